package controllers

import (
	"net/http"

	"fitmanager-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardController struct {
	svc    *services.DashboardService
	logger *zap.Logger
}

func NewDashboardController(svc *services.DashboardService, logger *zap.Logger) *DashboardController {
	return &DashboardController{svc: svc, logger: logger}
}

func (h *DashboardController) GetStats(c *gin.Context) {
	stats, err := h.svc.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Dashboard", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Root serves GET /api/ as a liveness message.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "FitManager API - customer management system"})
}
