package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidstream/backend/internal/service"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats godoc
// @Summary Get the caller's channel statistics
// @Description Video count, subscriber count, total views and total likes across the channel.
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.Response
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	user := GetAuthUser(c)
	stats, err := h.dashboard.GetChannelStats(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, stats, "All stats fetched successfully.")
}

// Videos godoc
// @Summary List the caller's channel videos
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.Response
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/dashboard/videos [get]
func (h *DashboardHandler) Videos(c *gin.Context) {
	user := GetAuthUser(c)
	videos, err := h.dashboard.ListChannelVideos(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, videos, "All videos fetched successfully.")
}
