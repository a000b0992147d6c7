package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"skylink/internal/domain/session"
	sessionstore "skylink/internal/infrastructure/session"
	"skylink/internal/interfaces/http/middleware"
	"skylink/internal/shared/authorization"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext creates a test gin.Context with the given method, path, and optional body.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// AttachHolder installs a memory-backed holder on c, as the session
// middleware would. A non-empty role also stores a session for it.
func AttachHolder(t *testing.T, c *gin.Context, role authorization.UserRole) *session.Holder {
	t.Helper()

	h := session.NewHolder(sessionstore.NewMemoryStore(), "test-session", nil)
	if role != "" {
		_, err := h.Set(context.Background(), "test-token", role, "user@skylink.test", 7)
		require.NoError(t, err)
		c.Set(authorization.ContextKeyRole, string(role))
	}
	c.Set(middleware.ContextKeyHolder, h)
	return h
}

// SetURLParam sets a URL parameter on the gin context.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data,omitempty"`
	Error    *ErrorInfo      `json:"error,omitempty"`
	Message  string          `json:"message,omitempty"`
	Redirect string          `json:"redirect,omitempty"`
}

// ErrorInfo mirrors utils.ErrorInfo for test assertions.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
