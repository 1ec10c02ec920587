package app

import (
	"github.com/AdityaANS/dsa-progress-tracker/pkg/monitoring"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/health", c.health.HealthCheck)
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/progress", c.progress.GetProgress)
		api.POST("/topics", c.progress.AddTopic)
		api.PATCH("/topics/:index/target", c.progress.UpdateTarget)
		api.POST("/topics/:index/solves", c.progress.RecordSolve)

		api.POST("/session", c.session.SignIn)
		api.DELETE("/session", c.session.SignOut)
	}
}
