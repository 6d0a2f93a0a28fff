package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hackateen/mural/internal/handlers"
	"github.com/hackateen/mural/internal/middleware"
	"github.com/hackateen/mural/internal/repository"
	"github.com/hackateen/mural/internal/types"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *gin.Engine {
	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)
	comments := repository.NewCommentRepository(db)

	authHandler := handlers.NewAuthHandler(users)
	userHandler := handlers.NewUserHandler(users)
	postHandler := handlers.NewPostHandler(posts)
	commentHandler := handlers.NewCommentHandler(comments)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)
	r.POST("/login", authHandler.Login)
	r.GET("/me", middleware.RequireAuth(db), handlers.Me)

	r.POST("/users", userHandler.Create)
	r.GET("/users", userHandler.List)
	r.GET("/users/:id", userHandler.Get)
	r.PATCH("/users/:id", userHandler.Update)
	r.DELETE("/users/:id", userHandler.Delete)

	// Reads are public, writes require a token.
	r.GET("/posts", postHandler.List)
	r.GET("/posts/:id", postHandler.Get)
	r.POST("/posts", middleware.RequireAuth(db), postHandler.Create)
	r.PATCH("/posts/:id", middleware.RequireAuth(db), postHandler.Update)
	r.DELETE("/posts/:id", middleware.RequireAuth(db), postHandler.Delete)

	r.POST("/comments", commentHandler.Create)
	r.GET("/comments", commentHandler.List)
	r.GET("/comments/:id", commentHandler.Get)
	r.PATCH("/comments/:id", commentHandler.Update)
	r.DELETE("/comments/:id", commentHandler.Delete)

	return r
}
