package router

import (
	"net/http"

	handlers "demoapps/handler"
	counterHandler "demoapps/internal/counter"
	messageHandler "demoapps/internal/message"
	postHandler "demoapps/internal/post"
	"demoapps/middleware"
	"demoapps/pkg/logger"
	"demoapps/web"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

func base(metrics *middleware.Metrics) *gin.Engine {
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestLogger(logger.Log),
		metrics.Handler(),
		secure.New(secure.Config{
			FrameDeny:          true,
			ContentTypeNosniff: true,
			BrowserXssFilter:   true,
			ReferrerPolicy:     "strict-origin-when-cross-origin",
		}),
	)
	engine.SetHTMLTemplate(web.Templates())

	engine.GET("/healthz", handlers.Health)
	engine.GET("/metrics", gin.WrapH(metrics.Exposition()))
	return engine
}

func SetupCounter(h *counterHandler.CounterHandler, metrics *middleware.Metrics) http.Handler {
	engine := base(metrics)
	engine.GET("/", h.Index)
	if h.Hub != nil {
		engine.GET("/ws", h.Feed)
	}
	return engine
}

func SetupMessageBoard(h *messageHandler.MessageHandler, metrics *middleware.Metrics) http.Handler {
	engine := base(metrics)
	engine.GET("/", h.ListMessages)
	engine.GET("/add/:message", h.AddMessage)
	return engine
}

func SetupBlog(h *postHandler.PostHandler, metrics *middleware.Metrics) http.Handler {
	engine := base(metrics)
	engine.GET("/", h.Index)
	return engine
}
