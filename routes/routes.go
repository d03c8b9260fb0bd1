package routes

import (
	"github.com/fadhlanhapp/tripdash-backend/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		// Auth endpoints
		v1.POST("/auth/login", handlers.Login)
		v1.POST("/auth/logout", handlers.Logout)
		v1.GET("/auth/session", handlers.RestoreSession)

		// Dashboard endpoints
		v1.GET("/dashboard", handlers.GetDashboard)
		v1.POST("/dashboard/refresh", handlers.RefreshDashboard)
		v1.GET("/dashboard/export", handlers.ExportDashboard)
	}
}
