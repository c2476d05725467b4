package handler

import (
	"net/http"

	"todoapp/internal/middleware"
	"todoapp/internal/service"
	"todoapp/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes login, registration and the profile echo.
type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "email and password are required", "")
		return
	}

	res, err := h.Auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": res.AccessToken,
		"user":         toUserResp(&res.User),
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "email, password and name are required", "")
		return
	}

	res, err := h.Auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"access_token": res.AccessToken,
		"user":         toUserResp(&res.User),
	})
}

// Profile echoes the token claims attached by the auth middleware.
func (h *AuthHandler) Profile(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId": id.UserID,
		"email":  id.Email,
	})
}
