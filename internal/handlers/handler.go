package handlers

import (
	"github.com/bhoomi2310/GreenPulse/internal/logger"
	"github.com/bhoomi2310/GreenPulse/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// Live dashboard feed (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/locations", h.listLocations)

		loc := api.Group("/locations/:id")
		{
			loc.GET("/reading", h.currentReading)
			loc.GET("/history", h.getHistory)
			loc.GET("/history/export", h.exportHistory)
			loc.GET("/summary/weekly", h.weeklySummary)
			loc.GET("/distribution", h.statusDistribution)
			loc.GET("/impact", h.impact)
		}
	}
}
