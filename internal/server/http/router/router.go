package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/eshopcore/backoffice/internal/server/http/handlers"
	"github.com/eshopcore/backoffice/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BackofficeFacade, pinger handlers.Pinger, windowDays int, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	sessionHandler := handlers.NewSessionHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	refundHandler := handlers.NewRefundHandler(facade, windowDays)
	healthHandler := handlers.NewHealthHandler(pinger)

	engine.GET("/healthz", healthHandler.Check)

	api := engine.Group("/api")
	api.POST("/session", sessionHandler.Open)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))

	authed.POST("/orders", orderHandler.Register)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.GET("/orders/:id/refunds", orderHandler.Refunds)
	authed.GET("/orders/:id/refunds/total", orderHandler.RefundTotal)

	authed.POST("/refunds", refundHandler.Create)
	authed.GET("/refunds", refundHandler.List)
	authed.GET("/refunds/:id", refundHandler.Get)
	authed.PATCH("/refunds/:id", refundHandler.Update)
	authed.DELETE("/refunds/:id", refundHandler.Delete)
	authed.POST("/refunds/:id/approve", refundHandler.Approve)
	authed.POST("/refunds/:id/reject", refundHandler.Reject)
	authed.POST("/refunds/:id/cancel", refundHandler.Cancel)
	authed.PUT("/refunds/:id/amount", refundHandler.Amount)
	authed.GET("/refunds/:id/eligibility", refundHandler.Eligibility)

	return engine
}
