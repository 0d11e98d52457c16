package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/halcyonpay/payctl/internal/errors"
	"github.com/halcyonpay/payctl/internal/log"
)

// Client is the HalcyonPay gateway API client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token  string
	logger *log.Logger
}

// NewClient creates a new gateway API client
func NewClient(baseURL string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// SetToken sets the bearer token presented on authorized requests
func (c *Client) SetToken(token string) {
	c.token = token
}

// doRequest performs an HTTP request with authentication. The request body,
// when present, is sent as JSON. Extra headers may be nil.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, extra http.Header) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeGatewayRequest, "failed to marshal request body", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeGatewayRequest, "failed to create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for key, values := range extra {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	c.logger.Debug("gateway request", "method", method, "path", path)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeGatewayRequest,
			fmt.Sprintf("request to gateway failed: %s %s", method, path), err).
			WithSuggestion("Check network connectivity and the configured API URL")
	}

	return resp, nil
}

// APIError is an error response returned by the gateway
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("gateway returned %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("gateway returned %d: %s", e.StatusCode, e.Message)
}

// errorEnvelope is the gateway's error response shape
type errorEnvelope struct {
	Error APIError `json:"error"`
}

// parseResponse decodes the response body into target, or returns the
// gateway's error for non-2xx statuses.
func (c *Client) parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope errorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		} else {
			apiErr.Message = string(body)
		}

		c.logger.Debug("gateway error response",
			"status", resp.StatusCode,
			"code", apiErr.Code)

		return errors.Wrap(errors.ErrCodeGatewayStatus, "gateway request failed", apiErr)
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return errors.Wrap(errors.ErrCodeGatewayDecode, "failed to decode gateway response", err)
		}
	}

	return nil
}
