// Package backend is the typed HTTP client for the classification API.
// Every call follows the same contract: build exactly one request, send
// it, classify the outcome as transport failure, application failure or
// success, and on success decode the response body as the authoritative
// new state. No retries, no caching.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"classificador-web/pkg/metrics"
)

// Session is the opaque backend session relayed for one browser request.
// The raw Cookie header is forwarded verbatim and never inspected.
type Session struct {
	Cookie string
}

// SessionFrom captures the session cookies of an incoming browser request.
func SessionFrom(r *http.Request) Session {
	return Session{Cookie: r.Header.Get("Cookie")}
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

type request struct {
	method      string
	path        string
	body        io.Reader
	contentType string
	session     Session
}

func jsonRequest(method, path string, payload any, s Session) (request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return request{}, fmt.Errorf("encode request: %w", err)
	}
	return request{
		method:      method,
		path:        path,
		body:        bytes.NewReader(body),
		contentType: "application/json",
		session:     s,
	}, nil
}

// do sends one request and settles it. Transport failures come back as
// *ConnectionError, non-2xx responses as *APIError with the backend's
// message, and 2xx bodies are decoded into T. Response cookies are
// returned so callers can relay Set-Cookie headers to the browser.
func do[T any](ctx context.Context, c *Client, r request) (T, []*http.Cookie, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, r.body)
	if err != nil {
		return zero, nil, err
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.session.Cookie != "" {
		req.Header.Set("Cookie", r.session.Cookie)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordBackendRequest(r.path, "error", time.Since(start))
		c.log.Warn("backend unreachable",
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.Error(err))
		return zero, nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordBackendRequest(r.path, "error", time.Since(start))
		return zero, nil, &ConnectionError{Err: err}
	}

	metrics.RecordBackendRequest(r.path, strconv.Itoa(resp.StatusCode), time.Since(start))
	c.log.Debug("backend call",
		zap.String("method", r.method),
		zap.String("path", r.path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, nil, newAPIError(resp.StatusCode, body)
	}

	var out T
	if len(body) > 0 {
		if err := json.Unmarshal(body, &out); err != nil {
			return zero, nil, fmt.Errorf("decode response: %w", err)
		}
	}
	return out, resp.Cookies(), nil
}
