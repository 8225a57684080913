package handler

import (
	"context"
	"net/http"

	"demoapps/internal/message/model"

	"github.com/gin-gonic/gin"
)

// Board is the message store as seen by the HTTP layer.
type Board interface {
	ListMessages(ctx context.Context) ([]string, error)
	AddMessage(ctx context.Context, text string) error
}

type MessageHandler struct {
	Service Board
}

func NewMessageHandler(service Board) *MessageHandler {
	return &MessageHandler{Service: service}
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.Service.ListMessages(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	c.HTML(http.StatusOK, "messages.html", model.Page{Messages: messages})
}

// AddMessage stores the :message path segment as is.
func (h *MessageHandler) AddMessage(c *gin.Context) {
	if err := h.Service.AddMessage(c.Request.Context(), c.Param("message")); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	c.String(http.StatusOK, model.AddedReply)
}
