package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cast"

	reqctx "github.com/piresc/chauffeur/internal/pkg/context"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	nrpkg "github.com/piresc/chauffeur/internal/pkg/newrelic"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
	// APIKeyHeader is the header name for API key
	APIKeyHeader = "X-API-Key"
	// RequestIDHeader propagates the inbound request id downstream
	RequestIDHeader = "X-Request-ID"
)

// Config configures a Client
type Config struct {
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	ServiceName string
}

// Client is a JSON HTTP client for one upstream service
type Client struct {
	httpClient  *nethttp.Client
	baseURL     string
	apiKey      string
	serviceName string
}

// APIError is returned for any non-2xx response
type APIError struct {
	StatusCode int
	Detail     string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// NewClient creates a new client; a zero timeout uses DefaultTimeout
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		httpClient:  &nethttp.Client{Timeout: timeout},
		baseURL:     strings.TrimRight(config.BaseURL, "/"),
		apiKey:      config.APIKey,
		serviceName: config.ServiceName,
	}
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, query url.Values, result interface{}) error {
	if len(query) > 0 {
		endpoint = endpoint + "?" + query.Encode()
	}
	return c.do(ctx, nethttp.MethodGet, endpoint, nil, result)
}

// PostJSON performs a POST request with a JSON body and decodes the response
func (c *Client) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	return c.do(ctx, nethttp.MethodPost, endpoint, body, result)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}, result interface{}) error {
	target := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}
	if requestID := reqctx.GetRequestID(ctx); requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		logger.Warn("HTTP request failed",
			logger.String("service", c.serviceName),
			logger.String("method", method),
			logger.String("url", target),
			logger.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	logger.Debug("HTTP request completed",
		logger.String("service", c.serviceName),
		logger.String("method", method),
		logger.String("url", target),
		logger.Int("status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Detail:     ExtractErrorDetail(payload),
			Body:       payload,
		}
	}

	if result == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ExtractErrorDetail pulls a human readable message out of an error body,
// preferring "detail", then "message", then "error".
func ExtractErrorDetail(body []byte) string {
	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	for _, key := range []string{"detail", "message", "error"} {
		value, ok := parsed[key]
		if !ok || value == nil {
			continue
		}
		if s, err := cast.ToStringE(value); err == nil && s != "" {
			return s
		}
		if raw, err := json.Marshal(value); err == nil {
			return string(raw)
		}
	}
	return ""
}
