// Package backend is the client for the SkyLink REST API. Responses are
// normalized into the domain types before they leave this package.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "skylink/internal/shared/errors"
)

const apiPrefix = "/api"

// Client is the SkyLink backend API client. It is safe for concurrent use;
// WithToken returns a copy instead of mutating the receiver.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// NewClient creates a new backend API client.
//
// Parameters:
//   - baseURL: The backend origin (e.g., "http://localhost:8081"); the
//     /api prefix is added per request
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a client that authorizes every request with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// doRequest performs an HTTP request and decodes the JSON body into result.
// It returns the response status so callers can treat specific statuses
// (404 on the active subscription) as data.
func (c *Client) doRequest(ctx context.Context, method, url string, body any, result any) (int, error) {
	return c.doRequestOr(ctx, method, url, body, result, "")
}

// doRequestOr is doRequest with fallback replacing the generic message of
// a 4xx reply that carries none.
func (c *Client) doRequestOr(ctx context.Context, method, url string, body any, result any, fallback string) (int, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 0, err
		}
		return 0, apperrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, apperrors.NewNetworkError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, classifyStatus(resp.StatusCode, respBody, fallback)
	}

	if result == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return resp.StatusCode, nil
	}

	// A field of the wrong JSON type is skipped; the decoder still fills
	// every other field and row.
	var typeErr *json.UnmarshalTypeError
	if err := json.Unmarshal(respBody, result); err != nil && !errors.As(err, &typeErr) {
		return resp.StatusCode, apperrors.NewInternalError("unexpected response from server").
			WithCause(fmt.Errorf("unmarshal response: %w", err))
	}
	return resp.StatusCode, nil
}

// errorBody is the error envelope the backend sends on failures. Some
// endpoints reply with a bare string instead.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func messageFrom(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(trimmed, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		return eb.Error
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	if trimmed[0] != '<' && trimmed[0] != '{' && trimmed[0] != '[' {
		return string(trimmed)
	}
	return ""
}

func classifyStatus(status int, body []byte, fallback string) error {
	msg := messageFrom(body)
	if msg == "" && status >= 400 && status < 500 {
		msg = fallback
	}
	cause := fmt.Errorf("api error: status=%d body=%s", status, string(body))

	switch {
	case status == http.StatusUnauthorized:
		return apperrors.NewUnauthorizedError(orDefault(msg, "Unauthorized")).WithCause(cause)
	case status == http.StatusForbidden:
		return apperrors.NewForbiddenError(orDefault(msg, "Access denied")).WithCause(cause)
	case status == http.StatusNotFound:
		return apperrors.NewNotFoundError(orDefault(msg, "Not found")).WithCause(cause)
	case status == http.StatusConflict:
		return apperrors.NewConflictError(orDefault(msg, "Conflict")).WithCause(cause)
	case status >= 400 && status < 500:
		return apperrors.NewValidationError(orDefault(msg, "Request rejected by server")).WithCause(cause)
	default:
		return apperrors.NewInternalError(orDefault(msg, "Server error")).WithCause(cause)
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
