// Package backend is the typed client for the storefront REST backend.
// Every page of the admin panel goes through it; no handler builds URLs
// of its own.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// maxResponseSize bounds how much of a response body is read. Real
// responses are far smaller; the limit only guards against a runaway server.
const maxResponseSize int64 = 256 << 20

const defaultTimeout = 15 * time.Second

type Options struct {
	BaseURL string
	// SocialBaseURL serves the /api/social endpoints. Empty means BaseURL.
	SocialBaseURL string
	Revision      Revision
	Timeout       time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

type Client struct {
	baseURL   *url.URL
	socialURL *url.URL
	revision  Revision
	http      *http.Client
}

func New(opts Options) (*Client, error) {
	base, err := parseBase(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("backend url: %w", err)
	}
	social := base
	if opts.SocialBaseURL != "" {
		social, err = parseBase(opts.SocialBaseURL)
		if err != nil {
			return nil, fmt.Errorf("social backend url: %w", err)
		}
	}
	rev := opts.Revision
	if rev == "" {
		rev = RevisionV2
	}
	if !rev.valid() {
		return nil, fmt.Errorf("unknown backend revision %q", rev)
	}
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: base, socialURL: social, revision: rev, http: hc}, nil
}

func parseBase(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%q: missing host", raw)
	}
	return u, nil
}

// Revision reports which generation of endpoint paths the client speaks.
func (c *Client) Revision() Revision {
	return c.revision
}

func (c *Client) newRequest(ctx context.Context, method string, base *url.URL, path string, body io.Reader) (*http.Request, error) {
	u := *base
	u.Path = base.Path + path
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	reqID := middleware.GetReqID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set("X-Request-Id", reqID)
	return req, nil
}

func (c *Client) newJSONRequest(ctx context.Context, method string, base *url.URL, path string, payload any) (*http.Request, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s body: %w", path, err)
	}
	req, err := c.newRequest(ctx, method, base, path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do sends req and decodes a 2xx JSON body into out (when out is non-nil).
// Non-2xx responses become *APIError.
func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Warn("Backend request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("reading %s response: %w", req.URL.Path, err)
	}
	slog.Debug("Backend request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Method:  req.Method,
			Path:    req.URL.Path,
			Status:  resp.StatusCode,
			Message: errorMessage(data),
		}
		slog.Warn("Backend rejected request", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", req.URL.Path, err)
	}
	return nil
}

// decodeList accepts either a bare JSON array or an object wrapping the
// array under key.
func decodeList[T any](raw json.RawMessage, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '{' {
		var env map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, err
		}
		inner, ok := env[key]
		if !ok {
			return nil, fmt.Errorf("response object has no %q field", key)
		}
		trimmed = inner
	}
	var out []T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, err
	}
	return out, nil
}
