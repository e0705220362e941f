// Package router contains routing for the HTTP delivery.
package router

import (
	"contacts/internal/delivery/http/middleware"
	"contacts/internal/delivery/http/router/handler"
	"contacts/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ContactHandler *handler.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	contactHandler *handler.ContactHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		contactHandler: params.ContactHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimiter:    params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.rateLimiter.Limit)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimiter.Limit)
		authGroup.GET("/confirmed_email/:token", r.authHandler.ConfirmEmail)
		authGroup.POST("/request_email", r.authHandler.RequestEmail, r.rateLimiter.Limit)
		authGroup.POST("/reset_password", r.authHandler.ResetPassword, r.rateLimiter.Limit)
		authGroup.GET("/confirm_reset_password/:token", r.authHandler.ConfirmResetPassword)
	}

	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.Me)
		userGroup.PATCH("/avatar", r.userHandler.UpdateAvatar, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	contactGroup := api.Group("/contacts")
	contactGroup.Use(r.authMiddleware.Authenticate)
	{
		contactGroup.GET("", r.contactHandler.List)
		contactGroup.GET("/birthdays", r.contactHandler.UpcomingBirthdays)
		contactGroup.GET("/:id", r.contactHandler.Get)
		contactGroup.GET("/:id/qrcode", r.contactHandler.QRCode)
		contactGroup.POST("", r.contactHandler.Create)
		contactGroup.PUT("/:id", r.contactHandler.Update)
		contactGroup.DELETE("/:id", r.contactHandler.Delete)
	}
}
