package handler

import (
	"net/http"

	"demoapps/internal/counter/model"
	"demoapps/socket"

	"github.com/gin-gonic/gin"
)

// Visitor increments the hit counter.
type Visitor interface {
	Visit() (int, error)
}

type CounterHandler struct {
	Service Visitor
	Hub     *socket.Hub
}

func NewCounterHandler(service Visitor, hub *socket.Hub) *CounterHandler {
	return &CounterHandler{Service: service, Hub: hub}
}

// Index counts the visit and renders the new total.
func (h *CounterHandler) Index(c *gin.Context) {
	count, err := h.Service.Visit()
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	c.HTML(http.StatusOK, "counter.html", model.Page{Count: count})
}

// Feed subscribes the caller to live count updates over a websocket.
func (h *CounterHandler) Feed(c *gin.Context) {
	socket.ServeWs(h.Hub, c.Writer, c.Request)
}
