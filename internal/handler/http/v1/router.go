package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check без аутентификации
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	// Маршруты жизненного цикла инцидентов
	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.reportIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/active", h.listActiveIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/acknowledge", h.acknowledgeIncident)
		incidents.POST("/:id/archive", h.archiveIncident)
	}

	// Маршрут приема аномалий от AI-пайплайна
	protected.POST("/anomalies", h.ingestAnomaly)
}
