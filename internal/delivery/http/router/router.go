// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fleet/internal/delivery/http/middleware"
	"fleet/internal/delivery/http/router/handler"
	"fleet/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeliveryHandler  *handler.DeliveryHandler
	PushTokenHandler *handler.PushTokenHandler
	TrackingHandler  *handler.TrackingHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	deliveryHandler  *handler.DeliveryHandler
	pushTokenHandler *handler.PushTokenHandler
	trackingHandler  *handler.TrackingHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deliveryHandler:  params.DeliveryHandler,
		pushTokenHandler: params.PushTokenHandler,
		trackingHandler:  params.TrackingHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Live tracking WebSocket; reachable from the QR code without a token
	e.GET("/ws/delivery/:order_id", r.trackingHandler.StreamDeliveryEvents)

	// Delivery lifecycle routes require authentication
	deliveryGroup := e.Group("/deliveries")
	deliveryGroup.Use(r.authMiddleware.Authenticate)
	{
		deliveryGroup.POST("", r.deliveryHandler.CreateDelivery)
		deliveryGroup.GET("", r.deliveryHandler.ListDeliveries)
		deliveryGroup.GET("/:id", r.deliveryHandler.GetDelivery)
		// Status changes come from couriers and restaurant staff
		deliveryGroup.POST("/:id/update-status",
			r.deliveryHandler.UpdateStatus,
			r.authMiddleware.RequireAnyRole(entity.RoleDeliveryAgent, entity.RoleOwner),
		)
		deliveryGroup.GET("/:id/estimate-cost", r.deliveryHandler.EstimateCost)
		deliveryGroup.GET("/:id/track", r.deliveryHandler.TrackDelivery)
		deliveryGroup.GET("/:id/history", r.deliveryHandler.GetStatusHistory)
		deliveryGroup.GET("/:id/tracking-qr", r.deliveryHandler.GetTrackingQRCode)

		// Location reports come only from the assigned courier app
		deliveryGroup.POST("/:id/update-location",
			r.deliveryHandler.UpdateLocation,
			r.authMiddleware.RequireRole(entity.RoleDeliveryAgent),
		)
	}

	// Device routes for push notification tokens
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.POST("/push-token", r.pushTokenHandler.RegisterPushToken)
	}
}
