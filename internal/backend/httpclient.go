package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperr "contascan/cli/internal/errors"
	"contascan/cli/internal/logging"
	"contascan/cli/internal/models"
)

// User-facing fallback messages. Server-provided detail always wins.
const (
	msgConnection    = "Could not connect to the analysis server"
	msgServerGeneric = "The server returned an error"
	msgBadRequest    = "Failed to build the request"
)

// Endpoint paths, relative to the configured base URL.
const (
	pathRoot     = "/"
	pathHealth   = "/health"
	pathAnalyze  = "/analyze"
	pathChat     = "/chat"
	pathSessions = "/sessions"
	pathExtract  = "/extract"
	pathEdit     = "/edit"
	pathDownload = "/download"
)

// HTTP implements API over the REST endpoints of the analysis service.
type HTTP struct {
	// baseURL is the base URL for all requests (e.g., "http://localhost:8000")
	baseURL string
	// token is the optional Bearer token attached to every request
	token string
	// client is the underlying HTTP client with the uniform timeout
	client *http.Client
}

// newHTTP creates a new HTTP client with the given base URL and token.
// The timeout applies uniformly to every call; a call exceeding it fails as
// a connection error.
func newHTTP(baseURL, token string, timeout time.Duration) *HTTP {
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// setStandardHeaders applies the headers common to every request.
func (h *HTTP) setStandardHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "contascan-cli/1.0")
	req.Header.Set("Accept", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}
}

// do sends the request and normalizes failures: transport errors become
// Connection errors with a fixed message, non-2xx responses become Server
// errors carrying the body's detail/error field. Callers own the body.
func (h *HTTP) do(req *http.Request) (*http.Response, error) {
	logging.Debugf("%s %s", req.Method, req.URL)
	resp, err := h.client.Do(req)
	if err != nil {
		logging.Debugf("%s %s: %v", req.Method, req.URL, err)
		return nil, apperr.Wrap(apperr.Connection, msgConnection, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		msg := extractServerMessage(resp.Body)
		logging.Debugf("%s %s: status %d: %s", req.Method, req.URL, resp.StatusCode, msg)
		return nil, apperr.New(apperr.Server, msg)
	}
	return resp, nil
}

// extractServerMessage pulls the user-facing message out of an error body.
// The backend reports errors as {"detail": "..."} or {"error": "..."};
// absence of both yields the generic fallback.
func extractServerMessage(body io.Reader) string {
	var payload map[string]any
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return msgServerGeneric
	}
	if s, ok := payload["detail"].(string); ok && s != "" {
		return s
	}
	if s, ok := payload["error"].(string); ok && s != "" {
		return s
	}
	return msgServerGeneric
}

// getJSON performs a GET and decodes the response body into out.
func (h *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+path, nil)
	if err != nil {
		return apperr.Wrap(apperr.Request, msgBadRequest, err)
	}
	h.setStandardHeaders(req)
	resp, err := h.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrap(apperr.Server, msgServerGeneric, err)
	}
	return nil
}

// postJSON performs a POST with a JSON body and decodes the response into
// out when out is non-nil.
func (h *HTTP) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return apperr.Wrap(apperr.Request, msgBadRequest, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return apperr.Wrap(apperr.Request, msgBadRequest, err)
	}
	h.setStandardHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	resp, err := h.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrap(apperr.Server, msgServerGeneric, err)
	}
	return nil
}

// Health calls GET /health and returns the server status.
func (h *HTTP) Health(ctx context.Context) (*models.HealthStatus, error) {
	var out models.HealthStatus
	if err := h.getJSON(ctx, pathHealth, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ServerInfo calls GET / and returns the implementation-defined payload.
func (h *HTTP) ServerInfo(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := h.getJSON(ctx, pathRoot, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ API = (*HTTP)(nil)

// pathSession returns the path for one session resource.
func pathSession(id string) string {
	return fmt.Sprintf("%s/%s", pathSessions, id)
}
