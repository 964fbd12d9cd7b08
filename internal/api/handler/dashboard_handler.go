package handler

import (
	"errors"

	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats GET /api/v1/dashboard/stats?channel=
func (h *DashboardHandler) Stats(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	stats, err := h.dashboardService.Stats(c.Request.Context(), currentUserID, c.Query("channel"))
	if err != nil {
		handleDashboardError(c, err)
		return
	}

	response.OK(c, "channel stats fetched", stats)
}

// Videos GET /api/v1/dashboard/videos?channel=&page=&limit=
func (h *DashboardHandler) Videos(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)
	page := parsePagination(c)

	data, err := h.dashboardService.Videos(c.Request.Context(), currentUserID, c.Query("channel"), page)
	if err != nil {
		handleDashboardError(c, err)
		return
	}

	response.OK(c, "channel videos fetched", data)
}

func handleDashboardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrChannelNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Dashboard operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
