// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	CheckoutHandler *handler.CheckoutHandler
	SupportHandler  *handler.SupportHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	checkoutHandler *handler.CheckoutHandler
	supportHandler  *handler.SupportHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		catalogHandler:  params.CatalogHandler,
		checkoutHandler: params.CheckoutHandler,
		supportHandler:  params.SupportHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/register", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)
	e.POST("/refresh", r.userHandler.Refresh)
	e.GET("/logout", r.userHandler.Logout)

	api := e.Group("/api")
	{
		// Public catalog and support routes
		api.GET("/products", r.catalogHandler.ListProducts)
		api.GET("/courses", r.catalogHandler.ListCourses)
		api.POST("/chat", r.supportHandler.Chat)
	}

	// Purchase routes that require authentication
	purchaseGroup := e.Group("/api")
	purchaseGroup.Use(r.authMiddleware.Authenticate)
	{
		purchaseGroup.POST("/checkout", r.checkoutHandler.Checkout)
		purchaseGroup.GET("/orders", r.checkoutHandler.ListOrders)
		purchaseGroup.GET("/my/courses", r.checkoutHandler.ListMyCourses)
		purchaseGroup.GET("/download/:courseId", r.checkoutHandler.DownloadCourse)
	}
}
