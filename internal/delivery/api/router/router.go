// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"voterdesk/internal/delivery/api/middleware"
	"voterdesk/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	SessionHandler *handler.SessionHandler
	VoterHandler   *handler.VoterHandler
	ReportHandler  *handler.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	sessionHandler *handler.SessionHandler
	voterHandler   *handler.VoterHandler
	reportHandler  *handler.ReportHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		sessionHandler: params.SessionHandler,
		voterHandler:   params.VoterHandler,
		reportHandler:  params.ReportHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimiter:    params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	if r.rateLimiter != nil {
		authGroup.Use(r.rateLimiter.Handle)
	}
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/signout", r.authHandler.SignOut, r.authMiddleware.Authenticate)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/session", r.sessionHandler.Current)
	apiV1.GET("/session/events", r.sessionHandler.Events)
	apiV1.GET("/profile", r.sessionHandler.Profile)

	// Record routes act on behalf of a profile
	votersGroup := apiV1.Group("/voters", r.authMiddleware.RequireProfile)
	{
		votersGroup.GET("", r.voterHandler.List)
		votersGroup.POST("", r.voterHandler.Create)
		votersGroup.GET("/:id", r.voterHandler.Get)
		votersGroup.PUT("/:id", r.voterHandler.Update)
		votersGroup.DELETE("/:id", r.voterHandler.Delete)
	}

	apiV1.GET("/stats", r.reportHandler.Stats, r.authMiddleware.RequireProfile)

	exportsGroup := apiV1.Group("/exports", r.authMiddleware.RequireProfile)
	{
		exportsGroup.GET("/voters.pdf", r.reportHandler.ExportPDF)
		exportsGroup.GET("/voters.xlsx", r.reportHandler.ExportXLSX)
	}
}
