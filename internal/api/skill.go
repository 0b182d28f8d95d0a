package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliocraft/backend/internal/service"
	"github.com/foliocraft/backend/internal/types"
)

type SkillHandler struct {
	skills *service.SkillService
}

func NewSkillHandler(skills *service.SkillService) *SkillHandler {
	return &SkillHandler{skills: skills}
}

func (h *SkillHandler) List(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	skills, err := h.skills.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) Create(c *gin.Context) {
	ownerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	var req types.CreateSkillRequest
	if !bindJSON(c, &req) {
		return
	}

	skill, err := h.skills.Create(c.Request.Context(), user.ID, ownerID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, skill)
}

func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	var req types.UpdateSkillRequest
	if !bindJSON(c, &req) {
		return
	}

	skill, err := h.skills.Update(c.Request.Context(), user.ID, id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	if err := h.skills.Delete(c.Request.Context(), user.ID, id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
