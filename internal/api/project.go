package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliocraft/backend/internal/service"
	"github.com/foliocraft/backend/internal/types"
)

type ProjectHandler struct {
	projects  *service.ProjectService
	analytics *service.AnalyticsService
}

func NewProjectHandler(projects *service.ProjectService, analytics *service.AnalyticsService) *ProjectHandler {
	return &ProjectHandler{projects: projects, analytics: analytics}
}

func (h *ProjectHandler) List(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	projects, err := h.projects.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	ownerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	var req types.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projects.Create(c.Request.Context(), user.ID, ownerID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// Get is public; each hit bumps the project's view counter.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	project, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.analytics.RecordProjectView(c.Request.Context(), project.UserID, project.ID); err != nil {
		log.Printf("project view increment failed for project %s: %v", project.ID, err)
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	var req types.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projects.Update(c.Request.Context(), user.ID, id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	if err := h.projects.Delete(c.Request.Context(), user.ID, id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) ListComments(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}

	comments, err := h.projects.ListComments(c.Request.Context(), projectID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *ProjectHandler) CreateComment(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req types.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.projects.CreateComment(c.Request.Context(), projectID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}
