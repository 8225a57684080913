package handler

import (
	"context"
	"net/http"

	"demoapps/internal/post/model"

	"github.com/gin-gonic/gin"
)

type FrontPager interface {
	FrontPage(ctx context.Context) ([]model.Post, error)
}

type PostHandler struct {
	Service FrontPager
}

func NewPostHandler(service FrontPager) *PostHandler {
	return &PostHandler{Service: service}
}

func (h *PostHandler) Index(c *gin.Context) {
	posts, err := h.Service.FrontPage(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	c.HTML(http.StatusOK, "posts.html", model.Page{Posts: posts})
}
