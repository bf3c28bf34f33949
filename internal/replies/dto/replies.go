package dto

import "classificador-web/pkg/backend"

const forwardSubjectPrefix = "Resposta Sugerida para: "

// ReplyItem is one list entry plus the prefilled subject its forward
// modal opens with.
type ReplyItem struct {
	backend.Record
	ForwardSubject string
}

// RepliesView is the state of one render of the suggested-replies page.
type RepliesView struct {
	Items []ReplyItem
	Error string
}

// NewRepliesView derives the per-item forward subjects up front, when
// the page (and its modals) is built.
func NewRepliesView(records []backend.Record) RepliesView {
	items := make([]ReplyItem, len(records))
	for i, r := range records {
		items[i] = ReplyItem{Record: r, ForwardSubject: ForwardSubject(r.EmailContent)}
	}
	return RepliesView{Items: items}
}

// ForwardSubject builds the suggested subject line: a fixed prefix plus
// the first 50 characters of the classified email.
func ForwardSubject(emailContent string) string {
	runes := []rune(emailContent)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	return forwardSubjectPrefix + string(runes) + "..."
}

// EditReplyRequest is posted by the list view's edit modal.
type EditReplyRequest struct {
	NovaResposta string `json:"nova_resposta"`
}

// ForwardRequest is posted by the forward modal. The record itself is
// referenced by id in the URL; the backend resolves the content.
type ForwardRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
}
