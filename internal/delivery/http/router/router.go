// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dash/internal/delivery/http/middleware"
	"dash/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	NoteHandler    *handler.NoteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	noteHandler    *handler.NoteHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		noteHandler:    params.NoteHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Note routes require authentication
	noteGroup := e.Group("/notes")
	noteGroup.Use(r.authMiddleware.Authenticate)
	{
		noteGroup.POST("/", r.noteHandler.Create)
		noteGroup.GET("/", r.noteHandler.List)
		noteGroup.GET("/:id", r.noteHandler.Get)
		noteGroup.PUT("/:id", r.noteHandler.Update)
		noteGroup.DELETE("/:id", r.noteHandler.Delete)
	}
}
