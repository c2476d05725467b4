package router

import (
	"net/http"

	"todoapp/internal/config"
	"todoapp/internal/handler"
	"todoapp/internal/middleware"
	"todoapp/internal/repository"
	"todoapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	corsgin "github.com/rs/cors/wrapper/gin"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, services and handlers onto a Gin engine.
// All collaborators are constructed here explicitly.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLog())

	allowedOrigins := cfg.CORS.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	r.Use(corsgin.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// web client
	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"title": "Todo - Sign in"})
	})
	r.GET("/todos", func(c *gin.Context) {
		c.HTML(http.StatusOK, "todos.html", gin.H{"title": "Todo - My todos"})
	})
	r.GET("/todos/:id", func(c *gin.Context) {
		c.HTML(http.StatusOK, "todo.html", gin.H{"title": "Todo - Detail"})
	})

	userRepo := repository.NewGormUserRepository(db)
	todoRepo := repository.NewGormTodoRepository(db)

	authService := service.NewAuthService(userRepo,
		cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	todoService := service.NewTodoService(todoRepo)

	authHandler := handler.NewAuthHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)
	exportHandler := handler.NewExportHandler(todoService)

	// ====== API ======
	api := r.Group("/api")

	// auth endpoints (unversioned; login and register need no token)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)
	api.GET("/auth/profile", middleware.AuthMiddleware(cfg.JWT.Secret), authHandler.Profile)

	// versioned todo resources, all behind the access guard
	v1 := api.Group("/v1")
	v1.Use(middleware.AuthMiddleware(cfg.JWT.Secret))

	v1.GET("/todos", todoHandler.List)
	v1.POST("/todos", todoHandler.Create)
	v1.GET("/todos/export/csv", exportHandler.ExportCSV)
	v1.GET("/todos/export/xlsx", exportHandler.ExportXLSX)
	v1.GET("/todos/:id", todoHandler.GetByID)
	v1.PUT("/todos/:id", todoHandler.Update)
	v1.DELETE("/todos/:id", todoHandler.Delete)

	return r
}
