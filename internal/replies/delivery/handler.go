package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	repliesdto "classificador-web/internal/replies/dto"
	"classificador-web/pkg/backend"
)

const msgConnection = "Erro de conexão: Verifique se o backend está funcionando"

type RepliesHandler struct {
	client *backend.Client
	log    *zap.Logger
}

func NewRepliesHandler(client *backend.Client, log *zap.Logger) *RepliesHandler {
	return &RepliesHandler{client: client, log: log}
}

// ShowPage fetches the full list once and renders it. No pagination.
func (h *RepliesHandler) ShowPage(c *gin.Context) {
	records, err := h.client.ListReplies(c.Request.Context(), backend.SessionFrom(c.Request))
	if err != nil {
		h.log.Warn("list replies failed", zap.Error(err))
		view := repliesdto.RepliesView{Error: "Não foi possível carregar as respostas."}
		if backend.IsConnectionError(err) {
			view.Error = msgConnection
		}
		c.HTML(http.StatusOK, "respostas.html", view)
		return
	}
	c.HTML(http.StatusOK, "respostas.html", repliesdto.NewRepliesView(records))
}

// Delete removes one record. The confirmation prompt already happened in
// the browser; the page script drops the card on success without a
// refetch.
func (h *RepliesHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida."})
		return
	}

	if err := h.client.DeleteReply(c.Request.Context(), backend.SessionFrom(c.Request), id); err != nil {
		h.respondError(c, err, "Erro ao excluir resposta.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resposta excluída com sucesso!"})
}

// DeleteAll clears every record.
func (h *RepliesHandler) DeleteAll(c *gin.Context) {
	if err := h.client.DeleteAllReplies(c.Request.Context(), backend.SessionFrom(c.Request)); err != nil {
		h.respondError(c, err, "Erro ao excluir as respostas.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todas as respostas foram excluídas."})
}

// Edit overwrites one suggested reply and returns the stored record; the
// page script reconciles the affected card from the response body.
func (h *RepliesHandler) Edit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida."})
		return
	}
	var req repliesdto.EditReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida."})
		return
	}

	record, err := h.client.EditReply(c.Request.Context(), backend.SessionFrom(c.Request), id, req.NovaResposta)
	if err != nil {
		h.respondError(c, err, "Erro ao salvar a resposta editada no servidor.")
		return
	}
	c.JSON(http.StatusOK, record)
}

// Forward sends a stored reply by email to the given recipient.
func (h *RepliesHandler) Forward(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida."})
		return
	}
	var req repliesdto.ForwardRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.To == "" || req.Subject == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Por favor, preencha todos os campos."})
		return
	}

	status, err := h.client.SendEmail(c.Request.Context(), backend.SessionFrom(c.Request), req.To, req.Subject, id)
	if err != nil {
		h.respondError(c, err, "Erro ao enviar e-mail.")
		return
	}

	message := status.Message
	if message == "" {
		message = "E-mail enviado com sucesso!"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (h *RepliesHandler) respondError(c *gin.Context, err error, fallback string) {
	if backend.IsConnectionError(err) {
		c.JSON(http.StatusBadGateway, gin.H{"error": msgConnection})
		return
	}
	c.JSON(backend.StatusOf(err), gin.H{"error": backend.Message(err, fallback)})
}
