package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "classificador-web/internal/auth/delivery"
	classifyDelivery "classificador-web/internal/classify/delivery"
	repliesDelivery "classificador-web/internal/replies/delivery"
	"classificador-web/pkg/metrics"
	"classificador-web/web"
)

func SetupRoutes(r *gin.Engine, authHandler *authDelivery.AuthHandler, classifyHandler *classifyDelivery.ClassifyHandler, repliesHandler *repliesDelivery.RepliesHandler) {
	// Health check and scrape endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	r.StaticFS("/static", web.StaticFS())

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/classificacao")
	})

	// Auth pages
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.POST("/recuperar", authHandler.RecoverPassword)
	r.GET("/registrar", authHandler.ShowRegister)
	r.POST("/registrar", authHandler.Register)
	r.GET("/resetar-senha", authHandler.ShowResetPassword)
	r.POST("/resetar-senha", authHandler.ResetPassword)

	// Classification page
	r.GET("/classificacao", classifyHandler.ShowPage)
	r.POST("/classificacao", classifyHandler.Submit)
	r.POST("/classificacao/resposta", classifyHandler.SaveReply)
	r.POST("/classificar-inbox", classifyHandler.ClassifyInbox)

	// Suggested replies page
	r.GET("/respostas", repliesHandler.ShowPage)
	r.POST("/respostas/:id/editar", repliesHandler.Edit)
	r.POST("/respostas/:id/excluir", repliesHandler.Delete)
	r.POST("/respostas/excluir-todas", repliesHandler.DeleteAll)
	r.POST("/respostas/:id/encaminhar", repliesHandler.Forward)
}
