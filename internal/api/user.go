package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliocraft/backend/internal/service"
	"github.com/foliocraft/backend/internal/types"
)

type UserHandler struct {
	profiles  *service.ProfileService
	analytics *service.AnalyticsService
}

func NewUserHandler(profiles *service.ProfileService, analytics *service.AnalyticsService) *UserHandler {
	return &UserHandler{profiles: profiles, analytics: analytics}
}

// GetPortfolio is the public portfolio read; each hit counts as a visit.
func (h *UserHandler) GetPortfolio(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	view, err := h.profiles.GetPortfolio(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.analytics.RecordVisit(c.Request.Context(), userID); err != nil {
		log.Printf("visit counter increment failed for user %s: %v", userID, err)
	}

	c.JSON(http.StatusOK, view)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profiles.UpdateProfile(c.Request.Context(), user.ID, userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpsertSettings(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	var req types.UpsertSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	settings, err := h.profiles.UpsertSettings(c.Request.Context(), user.ID, userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
