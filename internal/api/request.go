package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/helpline/internal/errors"
	"github.com/diogo/helpline/internal/models"
)

const (
	// maxResponseBytes caps how much of a response body is read
	maxResponseBytes = 4 << 20
	// maxErrorBodyBytes caps how much of an error body is kept for diagnostics
	maxErrorBodyBytes = 4096
)

// do performs a request against the service and returns the body of a 2xx response.
// Non-2xx responses become *APIError; transport failures become *NetworkError.
func (c *Client) do(ctx context.Context, operation, method, path string, payload any) ([]byte, error) {
	if c.IsClosed() {
		return nil, fmt.Errorf("client is closed")
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", operation, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range models.DefaultHeaders() {
		if key == "Content-Type" && payload == nil {
			continue
		}
		req.Header.Set(key, value)
	}
	requestID := c.newRequestID()
	req.Header.Set(models.HeaderRequestID, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			"operation", operation,
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err,
		)
		return nil, apierrors.NewNetworkErrorWithEndpoint(operation, path, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apierrors.NewNetworkErrorWithEndpoint(operation, path, fmt.Errorf("failed to read response: %w", err))
	}

	c.logger.Debug("request completed",
		"operation", operation,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorBody := data
		if len(errorBody) > maxErrorBodyBytes {
			errorBody = errorBody[:maxErrorBodyBytes]
		}
		message := ""
		if gjson.ValidBytes(data) {
			message = gjson.GetBytes(data, PathErrorMessage).String()
		}
		return nil, apierrors.NewAPIErrorWithBody(resp.StatusCode, path, message, string(errorBody))
	}

	return data, nil
}

// decode unmarshals a JSON response body into out
func decode(data []byte, path string, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return apierrors.NewParseError(err.Error(), path)
	}
	return nil
}
