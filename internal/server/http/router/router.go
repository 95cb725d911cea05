package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/chowdhry/storefront/internal/server/http/handlers"
	"github.com/chowdhry/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CommerceFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")
	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	store := api.Group("")
	store.GET("/delivery/estimate", checkoutHandler.Quote)
	store.POST("/orders", checkoutHandler.Place)
	store.POST("/orders/:id/payment/verify", paymentHandler.Verify)
	store.POST("/orders/:id/payment/failure", paymentHandler.Failure)
	store.POST("/orders/:id/payment/cancel", paymentHandler.Cancel)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade))
	admin.GET("/orders", adminHandler.Orders)
	admin.GET("/orders/:id", adminHandler.Order)
	admin.PATCH("/orders/:id/status", adminHandler.UpdateStatus)
	admin.PATCH("/orders/:id/payment-status", adminHandler.UpdatePaymentStatus)
	admin.PATCH("/orders/:id/delivery-status", adminHandler.UpdateDeliveryStatus)
	admin.POST("/orders/:id/shipment", adminHandler.CreateShipment)
	admin.GET("/orders/:id/tracking", adminHandler.TrackShipment)
	admin.GET("/failed-orders", adminHandler.FailedOrders)
	admin.DELETE("/failed-orders", adminHandler.CleanFailedOrders)

	return engine
}
