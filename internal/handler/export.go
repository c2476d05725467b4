package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"todoapp/internal/middleware"
	"todoapp/internal/service"
	"todoapp/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler downloads the caller's todos as CSV or XLSX.
type ExportHandler struct {
	Todos *service.TodoService
}

func NewExportHandler(todos *service.TodoService) *ExportHandler {
	return &ExportHandler{Todos: todos}
}

var exportHeaders = []string{"ID", "Title", "Description", "Status", "Created", "Updated"}

// ExportCSV writes the caller's todos as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	todos, err := h.Todos.List(c.Request.Context(), id.UserID, c.Query("status"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"todos_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, t := range todos {
		writer.Write([]string{
			t.ID,
			t.Title,
			t.Description,
			string(t.Status),
			t.CreatedAt.Format(time.RFC3339),
			t.UpdatedAt.Format(time.RFC3339),
		})
	}
}

// ExportXLSX writes the caller's todos as an XLSX attachment.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	todos, err := h.Todos.List(c.Request.Context(), id.UserID, c.Query("status"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Todos"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, t := range todos {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), t.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), t.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), t.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), string(t.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), t.CreatedAt.Format(time.RFC3339))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), t.UpdatedAt.Format(time.RFC3339))
	}

	f.SetColWidth(sheetName, "A", "A", 38)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 50)
	f.SetColWidth(sheetName, "D", "D", 14)
	f.SetColWidth(sheetName, "E", "F", 22)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"todos_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		writeServiceError(c, err)
	}
}
