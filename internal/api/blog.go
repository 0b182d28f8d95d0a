package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliocraft/backend/internal/service"
	"github.com/foliocraft/backend/internal/types"
)

type BlogHandler struct {
	posts *service.BlogService
}

func NewBlogHandler(posts *service.BlogService) *BlogHandler {
	return &BlogHandler{posts: posts}
}

func (h *BlogHandler) List(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	posts, err := h.posts.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) Create(c *gin.Context) {
	ownerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	var req types.CreateBlogPostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.posts.Create(c.Request.Context(), user.ID, ownerID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	var req types.UpdateBlogPostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.posts.Update(c.Request.Context(), user.ID, id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), user.ID, id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
