package dto

import "classificador-web/pkg/backend"

// Bulk inbox classification accepts between 1 and 50 messages per run.
const (
	MinInboxQuantity     = 1
	MaxInboxQuantity     = 50
	DefaultInboxQuantity = 5
)

// ClassifyView is the state of one render of the classification page.
// The form and the result are mutually exclusive: once Result is set the
// template drops the form entirely.
type ClassifyView struct {
	EmailText string
	ActiveTab string // "text" or "file"
	Error     string
	Result    *backend.Record
}

// SaveReplyRequest persists an edited suggested reply from the result
// view. The response body, not this payload, is what gets displayed.
type SaveReplyRequest struct {
	ID                int    `json:"id"`
	SuggestedResponse string `json:"suggested_response"`
}

// ClassifyInboxRequest triggers bulk classification of the latest
// Quantidade inbox messages.
type ClassifyInboxRequest struct {
	Quantidade int `json:"quantidade"`
}
