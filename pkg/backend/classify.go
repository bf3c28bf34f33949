package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// Classify submits pasted email text for classification.
func (c *Client) Classify(ctx context.Context, s Session, emailText string) (Record, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("email_text", emailText); err != nil {
		return Record{}, err
	}
	if err := w.Close(); err != nil {
		return Record{}, err
	}

	record, _, err := do[Record](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/classify",
		body:        &buf,
		contentType: w.FormDataContentType(),
		session:     s,
	})
	return record, err
}

// ClassifyFile submits an uploaded .txt or .pdf email file. The caller
// has already validated the declared content type; this just packages it.
func (c *Client) ClassifyFile(ctx context.Context, s Session, filename, contentType string, data []byte) (Record, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, strings.ReplaceAll(filename, `"`, "")))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return Record{}, err
	}
	if _, err := part.Write(data); err != nil {
		return Record{}, err
	}
	if err := w.Close(); err != nil {
		return Record{}, err
	}

	record, _, err := do[Record](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/classify",
		body:        &buf,
		contentType: w.FormDataContentType(),
		session:     s,
	})
	return record, err
}

// ClassifyInbox triggers server-side classification of the user's
// quantidade most recent inbox messages.
func (c *Client) ClassifyInbox(ctx context.Context, s Session, quantidade int) (InboxResult, error) {
	req, err := jsonRequest(http.MethodPost, "/api/classificar-inbox", classifyInboxRequest{Quantidade: quantidade}, s)
	if err != nil {
		return InboxResult{}, err
	}
	result, _, err := do[InboxResult](ctx, c, req)
	return result, err
}
