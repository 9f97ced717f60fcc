// Package stockapi executes requests against the stock.indianapi.in REST API and
// normalizes every outcome into a types.Envelope.
package stockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/stocksmcp/stocks-mcp/internal/config"
	"github.com/stocksmcp/stocks-mcp/pkg/types"
	"go.uber.org/zap"
)

// RequestTimeout bounds every outbound request.
const RequestTimeout = 15 * time.Second

// maxDetailChars is the number of characters of a raw response body kept in an envelope's details.
const maxDetailChars = 500

const (
	apiKeyHeader = "X-Api-Key"

	msgNonJSON = "API returned a non-JSON response."
)

// Executor performs one GET request per call and classifies the outcome.
// It is safe for concurrent use; it holds no mutable state.
type Executor struct {
	api        config.API
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithHTTPClient sets the HTTP client used for outbound requests.
func WithHTTPClient(c *http.Client) Option {
	return func(e *Executor) {
		if c != nil {
			e.httpClient = c
		}
	}
}

// WithLogger sets the logger that receives request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithTimeout overrides RequestTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(e *Executor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// NewExecutor creates an Executor for the given API configuration.
func NewExecutor(api config.API, opts ...Option) *Executor {
	e := &Executor{
		api:        api,
		httpClient: &http.Client{},
		timeout:    RequestTimeout,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute sends a GET request for path with the given query parameters.
// It never returns nil and never panics: every failure is reported through the envelope.
func (e *Executor) Execute(ctx context.Context, path string, params map[string]string) (env *types.Envelope) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("unexpected failure while calling the API", zap.String("path", path), zap.Any("panic", r))
			env = types.Failure(
				types.ErrorTypeServer,
				fmt.Sprintf("An unexpected server error occurred: %v", r),
				nil,
			)
		}
	}()

	if !e.api.HasKey() {
		e.logger.Error("API key is not set", zap.String("env_var", config.APIKeyEnvVar))
		return types.Failure(
			types.ErrorTypeConfiguration,
			fmt.Sprintf("API key '%s' is not configured in the environment.", config.APIKeyEnvVar),
			nil,
		)
	}

	reqURL, err := e.buildURL(path, params)
	if err != nil {
		e.logger.Error("request error", zap.String("path", path), zap.Error(err))
		return types.Failure(types.ErrorTypeRequest, err.Error(), nil)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		e.logger.Error("request error", zap.String("url", reqURL), zap.Error(err))
		return types.Failure(types.ErrorTypeRequest, err.Error(), nil)
	}
	req.Header.Set(apiKeyHeader, e.api.APIKey)
	req.Header.Set("Accept", "application/json")

	e.logger.Info("making request", zap.String("url", e.api.BaseURL+path), zap.Any("params", params))

	resp, err := e.httpClient.Do(req)
	if err != nil {
		e.logger.Error("request error", zap.String("url", reqURL), zap.Error(err))
		return types.Failure(types.ErrorTypeRequest, err.Error(), nil)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		e.logger.Error("failed to read response body", zap.String("url", reqURL), zap.Error(err))
		return types.Failure(types.ErrorTypeRequest, err.Error(), nil)
	}

	if msg, ok := httpErrorMessage(resp); ok {
		details := bodyDetails(body)
		e.logger.Error("HTTP error occurred", zap.String("error", msg), zap.Any("details", details))
		return types.Failure(types.ErrorTypeHTTP, msg, details)
	}

	if !json.Valid(body) {
		e.logger.Error(
			"non-JSON response",
			zap.String("url", reqURL),
			zap.Int("status", resp.StatusCode),
			zap.String("content", truncate(string(body), 200)),
		)
		return types.Failure(types.ErrorTypeInvalidResponseFormat, msgNonJSON, truncate(string(body), maxDetailChars))
	}

	e.logger.Debug("request succeeded", zap.String("url", reqURL), zap.Int("status", resp.StatusCode))
	return types.Success(json.RawMessage(body))
}

// buildURL joins the base URL and path and encodes params as the query string.
// Empty or nil params produce no query string.
func (e *Executor) buildURL(path string, params map[string]string) (string, error) {
	u, err := url.Parse(e.api.BaseURL + path)
	if err != nil {
		return "", fmt.Errorf("invalid request url: %w", err)
	}
	if len(params) == 0 {
		return u.String(), nil
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// httpErrorMessage returns a description of a 4xx/5xx response, eg-
// "404 Client Error: Not Found for url: https://stock.indianapi.in/stock?name=x".
// ok is false for any other status.
func httpErrorMessage(resp *http.Response) (msg string, ok bool) {
	code := resp.StatusCode
	var kind string
	switch {
	case code >= 400 && code < 500:
		kind = "Client Error"
	case code >= 500 && code < 600:
		kind = "Server Error"
	default:
		return "", false
	}

	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(code)))
	if reason == "" {
		reason = http.StatusText(code)
	}

	reqURL := ""
	if resp.Request != nil && resp.Request.URL != nil {
		reqURL = resp.Request.URL.String()
	}
	return fmt.Sprintf("%d %s: %s for url: %s", code, kind, reason, reqURL), true
}

// bodyDetails returns the body as JSON when it parses, otherwise its leading characters as text.
func bodyDetails(body []byte) any {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return truncate(string(body), maxDetailChars)
}

// truncate returns at most n characters of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
