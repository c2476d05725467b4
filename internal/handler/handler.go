package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"todoapp/internal/models"
	"todoapp/internal/service"
	"todoapp/internal/util"

	"github.com/gin-gonic/gin"
)

type userResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// toUserResp strips credential material from the stored user.
func toUserResp(u *models.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type todoResp struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTodoResp(t *models.Todo) todoResp {
	return todoResp{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// writeServiceError maps service failures onto the shared error envelope.
// Unexpected errors are logged with full detail and surfaced generically.
func writeServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		util.Error(c, http.StatusUnauthorized, "Invalid credentials", "")
	case errors.Is(err, service.ErrUserExists):
		util.Error(c, http.StatusBadRequest, "User already exists", "")
	case errors.Is(err, service.ErrNotFound):
		util.Error(c, http.StatusBadRequest, "Todo not found", "")
	case errors.As(err, &verr):
		util.Error(c, http.StatusBadRequest, verr.Message, "")
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		util.Error(c, http.StatusInternalServerError, "Internal server error", "")
	}
}
