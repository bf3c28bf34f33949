package backend

import (
	"context"
	"fmt"
	"net/http"
)

// ListReplies fetches every persisted classification record.
func (c *Client) ListReplies(ctx context.Context, s Session) ([]Record, error) {
	records, _, err := do[[]Record](ctx, c, request{
		method:  http.MethodGet,
		path:    "/api/respostas",
		session: s,
	})
	return records, err
}

// UpdateReply overwrites the suggested reply of one record. The returned
// record is the stored state and must replace any local copy.
func (c *Client) UpdateReply(ctx context.Context, s Session, id int, text string) (Record, error) {
	req, err := jsonRequest(http.MethodPut, fmt.Sprintf("/api/respostas/%d", id), updateReplyRequest{SuggestedResponse: text}, s)
	if err != nil {
		return Record{}, err
	}
	record, _, err := do[Record](ctx, c, req)
	return record, err
}

// EditReply is the list-view variant of UpdateReply; the backend exposes
// it as a separate endpoint with a different field name.
func (c *Client) EditReply(ctx context.Context, s Session, id int, text string) (Record, error) {
	req, err := jsonRequest(http.MethodPut, fmt.Sprintf("/api/respostas/%d/editar", id), editReplyRequest{NovaResposta: text}, s)
	if err != nil {
		return Record{}, err
	}
	record, _, err := do[Record](ctx, c, req)
	return record, err
}

// DeleteReply destroys one record.
func (c *Client) DeleteReply(ctx context.Context, s Session, id int) error {
	_, _, err := do[StatusResponse](ctx, c, request{
		method:  http.MethodDelete,
		path:    fmt.Sprintf("/api/respostas/%d", id),
		session: s,
	})
	return err
}

// DeleteAllReplies destroys every record.
func (c *Client) DeleteAllReplies(ctx context.Context, s Session) error {
	_, _, err := do[StatusResponse](ctx, c, request{
		method:  http.MethodDelete,
		path:    "/api/respostas",
		session: s,
	})
	return err
}

// SendEmail forwards a stored reply by email. The record is referenced by
// id; the backend resolves what actually gets sent.
func (c *Client) SendEmail(ctx context.Context, s Session, to, subject string, responseID int) (StatusResponse, error) {
	req, err := jsonRequest(http.MethodPost, "/api/send-email", sendEmailRequest{To: to, Subject: subject, ResponseID: responseID}, s)
	if err != nil {
		return StatusResponse{}, err
	}
	status, _, err := do[StatusResponse](ctx, c, req)
	return status, err
}
