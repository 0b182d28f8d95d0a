package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foliocraft/backend/internal/apperr"
)

// ErrorEnvelope is the uniform failure response shape.
type ErrorEnvelope struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	ErrorCode string   `json:"error_code"`
	Details   []string `json:"details,omitempty"`
	Timestamp string   `json:"timestamp"`
}

// ErrorNormalizer converts domain failures attached to the context into the
// envelope, and turns panics into a 500 without leaking internals. It must
// be registered before any middleware that can fail.
func ErrorNormalizer(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				writeEnvelope(c, apperr.Internal(fmt.Errorf("%v", r)), production)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		appErr, ok := apperr.As(err)
		if !ok {
			appErr = apperr.Internal(err)
		}
		writeEnvelope(c, appErr, production)
	}
}

func writeEnvelope(c *gin.Context, appErr *apperr.Error, production bool) {
	envelope := ErrorEnvelope{
		Success:   false,
		Message:   appErr.Message,
		ErrorCode: appErr.Code,
		Details:   appErr.Details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if appErr.Kind == apperr.KindInternal {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
		if !production && appErr.Err != nil {
			envelope.Details = append(envelope.Details, appErr.Err.Error())
		}
	}

	c.AbortWithStatusJSON(appErr.Status(), envelope)
}

// NotFoundHandler normalizes unmatched routes into the envelope as well.
func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorEnvelope{
		Success:   false,
		Message:   "route not found",
		ErrorCode: "NOT_FOUND",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
