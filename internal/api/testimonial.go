package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliocraft/backend/internal/service"
	"github.com/foliocraft/backend/internal/types"
)

type TestimonialHandler struct {
	testimonials *service.TestimonialService
}

func NewTestimonialHandler(testimonials *service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

func (h *TestimonialHandler) List(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	testimonials, err := h.testimonials.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	ownerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	var req types.CreateTestimonialRequest
	if !bindJSON(c, &req) {
		return
	}

	testimonial, err := h.testimonials.Create(c.Request.Context(), user.ID, ownerID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, testimonial)
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	var req types.UpdateTestimonialRequest
	if !bindJSON(c, &req) {
		return
	}

	testimonial, err := h.testimonials.Update(c.Request.Context(), user.ID, id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	if err := h.testimonials.Delete(c.Request.Context(), user.ID, id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
