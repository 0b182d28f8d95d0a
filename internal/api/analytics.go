package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliocraft/backend/internal/service"
)

type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Get returns the owner's snapshot, creating a zeroed row on first read.
func (h *AnalyticsHandler) Get(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	analytics, err := h.analytics.Get(c.Request.Context(), user.ID, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
