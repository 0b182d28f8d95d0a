package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/foliocraft/backend/internal/apperr"
	"github.com/foliocraft/backend/internal/middleware"
	"github.com/foliocraft/backend/internal/models"
)

// bindJSON validates the request body against the DTO's binding tags.
// On failure it records a validation error for the normalizer and the
// handler returns without touching the store.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperr.Validation("invalid request body", err.Error()))
		return false
	}
	return true
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		_ = c.Error(apperr.Validation("invalid id", param+": not a valid id"))
		return uuid.Nil, false
	}
	return id, true
}

// principal returns the user bound by AuthGuard. Reaching a protected
// handler without one is a wiring bug, reported as an internal error.
func principal(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.Principal(c)
	if !ok {
		_ = c.Error(apperr.CredentialMissing())
		return nil, false
	}
	return user, true
}

// HealthHandler reports liveness.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
