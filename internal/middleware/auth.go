package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/foliocraft/backend/internal/apperr"
	"github.com/foliocraft/backend/internal/models"
	"github.com/foliocraft/backend/internal/types"
)

// TokenValidator verifies a bearer token and extracts its claims.
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// PrincipalResolver loads the account a validated token points at.
type PrincipalResolver interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

const principalKey = "principal"

// AuthGuard validates the bearer credential and binds the live account to
// the request context. Token possession alone is not enough: a token for a
// deleted account fails the same way a forged one does.
func AuthGuard(validator TokenValidator, resolver PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			_ = c.Error(apperr.CredentialMissing())
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			_ = c.Error(apperr.CredentialInvalid("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		user, err := resolver.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(principalKey, user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// Principal returns the authenticated user bound by AuthGuard.
func Principal(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
