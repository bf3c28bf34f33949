package delivery

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	classifydto "classificador-web/internal/classify/dto"
	"classificador-web/pkg/backend"
)

const msgConnection = "Erro de conexão: Verifique se o backend está funcionando"

type ClassifyHandler struct {
	client *backend.Client
	log    *zap.Logger
}

func NewClassifyHandler(client *backend.Client, log *zap.Logger) *ClassifyHandler {
	return &ClassifyHandler{client: client, log: log}
}

// ShowPage renders the pristine submission form. "Novo Email" links back
// here, which is all the reset there is: state lives in the render.
func (h *ClassifyHandler) ShowPage(c *gin.Context) {
	c.HTML(http.StatusOK, "classificacao.html", classifydto.ClassifyView{ActiveTab: "text"})
}

// Submit classifies pasted text or an uploaded file, depending on which
// tab posted the form. On success the result view replaces the form.
func (h *ClassifyHandler) Submit(c *gin.Context) {
	mode := c.PostForm("mode")
	if mode != "file" {
		mode = "text"
	}
	view := classifydto.ClassifyView{ActiveTab: mode}

	var (
		record backend.Record
		err    error
	)
	session := backend.SessionFrom(c.Request)

	if mode == "text" {
		text := c.PostForm("email_text")
		view.EmailText = text
		if strings.TrimSpace(text) == "" {
			view.Error = "Por favor, insira o conteúdo do email"
			c.HTML(http.StatusOK, "classificacao.html", view)
			return
		}
		record, err = h.client.Classify(c.Request.Context(), session, text)
	} else {
		fileHeader, ferr := c.FormFile("file")
		if ferr != nil {
			view.Error = "Por favor, selecione um arquivo"
			c.HTML(http.StatusOK, "classificacao.html", view)
			return
		}
		declared := fileHeader.Header.Get("Content-Type")
		if declared != "text/plain" && declared != "application/pdf" {
			// Rejected locally; nothing reaches the backend.
			view.Error = "Por favor, selecione apenas arquivos .txt ou .pdf"
			c.HTML(http.StatusOK, "classificacao.html", view)
			return
		}
		file, ferr := fileHeader.Open()
		if ferr != nil {
			view.Error = "Por favor, selecione um arquivo"
			c.HTML(http.StatusOK, "classificacao.html", view)
			return
		}
		data, ferr := io.ReadAll(file)
		file.Close()
		if ferr != nil {
			view.Error = "Erro ao ler o arquivo selecionado."
			c.HTML(http.StatusOK, "classificacao.html", view)
			return
		}
		record, err = h.client.ClassifyFile(c.Request.Context(), session, fileHeader.Filename, declared, data)
	}

	if err != nil {
		if backend.IsConnectionError(err) {
			view.Error = msgConnection
		} else {
			view.Error = backend.Message(err, "Erro ao processar o email")
		}
		c.HTML(http.StatusOK, "classificacao.html", view)
		return
	}

	view.Result = &record
	c.HTML(http.StatusOK, "classificacao.html", view)
}

// SaveReply persists an edited reply and echoes the stored record back.
// The page script replaces the displayed text with the returned value,
// not with what it submitted.
func (h *ClassifyHandler) SaveReply(c *gin.Context) {
	var req classifydto.SaveReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida."})
		return
	}

	record, err := h.client.UpdateReply(c.Request.Context(), backend.SessionFrom(c.Request), req.ID, req.SuggestedResponse)
	if err != nil {
		if backend.IsConnectionError(err) {
			c.JSON(http.StatusBadGateway, gin.H{"error": msgConnection})
			return
		}
		c.JSON(backend.StatusOf(err), gin.H{"error": backend.Message(err, "Ocorreu um erro ao salvar a resposta no banco.")})
		return
	}

	c.JSON(http.StatusOK, record)
}

// ClassifyInbox triggers server-side classification of the latest N
// inbox messages. The quantity bound is validated here, before any
// request is issued.
func (h *ClassifyHandler) ClassifyInbox(c *gin.Context) {
	var req classifydto.ClassifyInboxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida."})
		return
	}
	if req.Quantidade < classifydto.MinInboxQuantity || req.Quantidade > classifydto.MaxInboxQuantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Por favor, insira um número entre %d e %d.",
			classifydto.MinInboxQuantity, classifydto.MaxInboxQuantity)})
		return
	}

	result, err := h.client.ClassifyInbox(c.Request.Context(), backend.SessionFrom(c.Request), req.Quantidade)
	if err != nil {
		if backend.IsConnectionError(err) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Erro de conexão ao classificar e-mails. Tente novamente."})
			return
		}
		c.JSON(backend.StatusOf(err), gin.H{"error": backend.Message(err, "Erro ao classificar e-mails automaticamente.")})
		return
	}

	message := result.Message
	if message == "" {
		message = fmt.Sprintf("%d e-mails classificados com sucesso!", len(result.Classificados))
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "classificados": result.Classificados})
}
