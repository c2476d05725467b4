package handler

import (
	"net/http"

	"todoapp/internal/middleware"
	"todoapp/internal/service"
	"todoapp/internal/util"

	"github.com/gin-gonic/gin"
)

// TodoHandler exposes the ownership-scoped todo CRUD endpoints. The acting
// user always comes from the verified token, never from the request body.
type TodoHandler struct {
	Todos *service.TodoService
}

func NewTodoHandler(todos *service.TodoService) *TodoHandler {
	return &TodoHandler{Todos: todos}
}

type createTodoReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateTodoReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (h *TodoHandler) List(c *gin.Context) {
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

	resp := make([]todoResp, 0, len(todos))
	for i := range todos {
		resp = append(resp, toTodoResp(&todos[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TodoHandler) Create(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req createTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body", "")
		return
	}

	todo, err := h.Todos.Create(c.Request.Context(), id.UserID, req.Title, req.Description)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTodoResp(todo))
}

func (h *TodoHandler) GetByID(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	todo, err := h.Todos.GetByID(c.Request.Context(), id.UserID, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTodoResp(todo))
}

func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req updateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body", "")
		return
	}

	patch := service.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
	todo, err := h.Todos.Update(c.Request.Context(), id.UserID, c.Param("id"), patch)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTodoResp(todo))
}

func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	if err := h.Todos.Delete(c.Request.Context(), id.UserID, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
