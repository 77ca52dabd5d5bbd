// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"crm/internal/delivery/http/middleware"
	"crm/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	CustomerHandler     *handler.CustomerHandler
	ContactHandler      *handler.ContactHandler
	AuthHandler         *handler.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler     *handler.CustomerHandler
	contactHandler      *handler.ContactHandler
	authHandler         *handler.AuthHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler:     params.CustomerHandler,
		contactHandler:      params.ContactHandler,
		authHandler:         params.AuthHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Registration is the only unauthenticated customer operation.
	e.POST("/customers", r.customerHandler.Create)

	auth := r.authMiddleware.Authenticate

	customers := e.Group("/customers", auth)
	{
		customers.GET("/:id", r.customerHandler.Get)
		customers.POST("/query", r.customerHandler.Query)
		customers.PUT("/:id", r.customerHandler.Update)
		customers.DELETE("/:id", r.customerHandler.Delete)
		customers.PUT("/password", r.customerHandler.UpdatePassword)

		customers.GET("/:id/contacts", r.contactHandler.List)
		customers.POST("/:id/contacts", r.contactHandler.Add)
		customers.PUT("/:id/contacts/:contactId", r.contactHandler.Update)
		customers.DELETE("/:id/contacts/:contactId", r.contactHandler.Remove)
	}
}
