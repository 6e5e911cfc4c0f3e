// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"loocate/internal/delivery/http/middleware"
	"loocate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PositionHandler *handler.PositionHandler
	TokenHandler    *handler.TokenHandler
	EventHandler    *handler.EventHandler
	PresenceHandler *handler.PresenceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	positionHandler *handler.PositionHandler
	tokenHandler    *handler.TokenHandler
	eventHandler    *handler.EventHandler
	presenceHandler *handler.PresenceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		positionHandler: params.PositionHandler,
		tokenHandler:    params.TokenHandler,
		eventHandler:    params.EventHandler,
		presenceHandler: params.PresenceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Everything else requires a signed-in user
	api := e.Group("", r.authMiddleware.Authenticate)
	{
		// Position ingestion and radius discovery
		api.PUT("/positions/me", r.positionHandler.UpdatePosition)
		api.GET("/positions/me", r.positionHandler.GetPosition)
		api.GET("/nearby", r.positionHandler.GetNearby)

		// Device token management
		api.POST("/tokens", r.tokenHandler.RegisterToken)
		api.DELETE("/tokens", r.tokenHandler.UnregisterToken)
		api.GET("/tokens", r.tokenHandler.ListTokens)

		// Viewer-triggered engagement events
		api.POST("/events/profile-view", r.eventHandler.ProfileView)
		api.POST("/events/social-click", r.eventHandler.SocialClick)

		// Presence websocket
		api.GET("/presence/ws", r.presenceHandler.Connect)
	}
}
