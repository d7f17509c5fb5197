// Package upstream implements the gateway ports against the commerce REST
// API. The API is an external collaborator the storefront does not control:
// only its response shapes are consumed here.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/boipoka/storefront/internal/api/metrics"
)

const defaultTimeout = 10 * time.Second

type tokenKey struct{}

// WithToken returns a context carrying the upstream bearer token. The session
// middleware attaches it once per request; every gateway call forwards it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext extracts the upstream bearer token, if any.
func TokenFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}

// Config captures the settings for talking to the upstream API.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the shared HTTP client all gateways go through. Requests inherit
// the caller's context, so an aborted storefront request cancels its in-flight
// upstream call instead of letting a late response land.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New builds a Client. A default timeout is applied when none is provided.
func New(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Error is a non-2xx upstream response. Detail is the human-readable message
// from the upstream's {"detail": "..."} envelope and is shown to the user
// verbatim; when the body carries no detail, Detail is empty and callers fall
// back to a generic message.
type Error struct {
	StatusCode int
	Detail     string
}

// status returns the upstream HTTP status carried by err, or 0 when err is
// not an upstream response error.
func status(err error) int {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.StatusCode
	}
	return 0
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("upstream: status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream: status %d: %s", e.StatusCode, e.Detail)
}

// get performs a GET and returns the raw body for the caller to decode. List
// endpoints need the raw bytes because the upstream serves them either as a
// plain array or as a paginated envelope (see Collection).
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := c.do(ctx, http.MethodPost, path, nil, in)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) patchJSON(ctx context.Context, path string, in, out any) error {
	body, err := c.do(ctx, http.MethodPatch, path, nil, in)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) deleteJSON(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	return decode(body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in any) ([]byte, error) {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("upstream: encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("upstream: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := TokenFromContext(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(method+" "+path, "transport_error").Inc()
		return nil, fmt.Errorf("upstream: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestDuration.WithLabelValues(method + " " + path).Observe(time.Since(start).Seconds())
	metrics.UpstreamRequestsTotal.WithLabelValues(method+" "+path, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upstream: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("upstream error response")
		return nil, &Error{StatusCode: resp.StatusCode, Detail: errorDetail(body)}
	}

	return body, nil
}

// errorDetail pulls the human-readable message out of an upstream error body.
func errorDetail(body []byte) string {
	var envelope struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Detail
}

func decode(body []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("upstream: decode response: %w", err)
	}
	return nil
}
