package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"todoapp/internal/middleware"
	"todoapp/internal/repository"
	"todoapp/internal/service"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

// newTestEngine wires the real handlers and access guard onto a Gin engine
// with in-memory repositories, mirroring the production route layout.
func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	authService := service.NewAuthService(repository.NewMemoryUserRepository(), testSecret, "todoapp", 1, 4)
	todoService := service.NewTodoService(repository.NewMemoryTodoRepository())

	authHandler := NewAuthHandler(authService)
	todoHandler := NewTodoHandler(todoService)
	exportHandler := NewExportHandler(todoService)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)
	api.GET("/auth/profile", middleware.AuthMiddleware(testSecret), authHandler.Profile)

	v1 := api.Group("/v1")
	v1.Use(middleware.AuthMiddleware(testSecret))
	v1.GET("/todos", todoHandler.List)
	v1.POST("/todos", todoHandler.Create)
	v1.GET("/todos/export/csv", exportHandler.ExportCSV)
	v1.GET("/todos/export/xlsx", exportHandler.ExportXLSX)
	v1.GET("/todos/:id", todoHandler.GetByID)
	v1.PUT("/todos/:id", todoHandler.Update)
	v1.DELETE("/todos/:id", todoHandler.Delete)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return body
}

// registerUser registers a fresh account and returns its token.
func registerUser(t *testing.T, r *gin.Engine, email, name string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    email,
		"password": "password123",
		"name":     name,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status = %d, body = %s", email, w.Code, w.Body.String())
	}
	body := decode(t, w)
	token, _ := body["access_token"].(string)
	if token == "" {
		t.Fatalf("register %s: no access_token in %v", email, body)
	}
	return token
}

// createTodo creates a todo over HTTP and returns its id.
func createTodo(t *testing.T, r *gin.Engine, token, title, description string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/todos", token, gin.H{
		"title":       title,
		"description": description,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create todo: status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	id, _ := body["id"].(string)
	if id == "" {
		t.Fatalf("create todo: no id in %v", body)
	}
	return id
}
