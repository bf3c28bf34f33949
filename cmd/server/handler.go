package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authDelivery "classificador-web/internal/auth/delivery"
	classifyDelivery "classificador-web/internal/classify/delivery"
	repliesDelivery "classificador-web/internal/replies/delivery"
	"classificador-web/pkg/backend"
	"classificador-web/pkg/config"
	"classificador-web/pkg/metrics"
	"classificador-web/web"
)

type Handler struct {
	client *backend.Client
	config *config.Config
	log    *zap.Logger
}

func NewHandler(client *backend.Client, cfg *config.Config, log *zap.Logger) *Handler {
	return &Handler{client: client, config: cfg, log: log}
}

// Engine builds the gin engine with templates, middleware and routes.
func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(h.config.GinMode)

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(h.log), metrics.Middleware())
	r.SetHTMLTemplate(web.Templates())

	authHandler := authDelivery.NewAuthHandler(h.client, h.log)
	classifyHandler := classifyDelivery.NewClassifyHandler(h.client, h.log)
	repliesHandler := repliesDelivery.NewRepliesHandler(h.client, h.log)
	SetupRoutes(r, authHandler, classifyHandler, repliesHandler)

	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
