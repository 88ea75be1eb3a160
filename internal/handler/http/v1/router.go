package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты генератора, под API-ключом если ключи заданы
	reports := api.Group("/reports")
	if len(h.cfg.APIKeys) > 0 {
		reports.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		reports.GET("/dummy", h.generateReports)
		reports.GET("/dummy/sql", h.generateReportsSQL)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
