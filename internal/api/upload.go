package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliocraft/backend/internal/apperr"
	"github.com/foliocraft/backend/internal/service"
)

type UploadHandler struct {
	uploads *service.UploadService
}

func NewUploadHandler(uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Upload accepts exactly one image under the "image" field. The :type path
// parameter picks the storage category.
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		_ = c.Error(apperr.UploadRejected("exactly one file is required under the \"image\" field"))
		return
	}

	category := service.Category(c.Param("type"))

	result, err := h.uploads.Store(c.Request.Context(), category, header)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
