package api

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", h.Health)
		apiGroup.GET("/templates", h.ListTemplates)
		apiGroup.POST("/generate", h.GenerateSite)
		apiGroup.GET("/download/:filename", h.DownloadSite)
	}
}
