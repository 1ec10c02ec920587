package controller

import (
	"net/http"

	"github.com/AdityaANS/dsa-progress-tracker/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type HealthController struct {
	Local  *sqlx.DB
	Remote *gorm.DB
}

func NewHealthController(local *sqlx.DB, remote *gorm.DB) *HealthController {
	return &HealthController{Local: local, Remote: remote}
}

// @Summary Health check
// @Description Local store must be up; the remote replica is reported
// @Description but never fails the check, sync to it is best effort.
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if err := c.Local.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Local store unavailable")
		return
	}

	remote := "disabled"
	if c.Remote != nil {
		remote = "up"
		if sqlDB, err := c.Remote.DB(); err != nil || sqlDB.Ping() != nil {
			remote = "down"
		}
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"local_store": "up",
			"remote":      remote,
		},
	})
}
