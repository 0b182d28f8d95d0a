package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliocraft/backend/internal/service"
	"github.com/foliocraft/backend/internal/types"
)

type ContactHandler struct {
	messages *service.MessageService
}

func NewContactHandler(messages *service.MessageService) *ContactHandler {
	return &ContactHandler{messages: messages}
}

// Create stores a visitor message for the targeted user and bumps their
// contact counter. Open to anonymous callers.
func (h *ContactHandler) Create(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req types.ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	message, err := h.messages.Create(c.Request.Context(), userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// ListMessages lets the owner read their inbox.
func (h *ContactHandler) ListMessages(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, ok := principal(c)
	if !ok {
		return
	}

	messages, err := h.messages.ListByOwner(c.Request.Context(), user.ID, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
