package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// do performs one request. Any HTTP status yields a Response; only failures
// to get one are returned as errors wrapping ErrUnavailable.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	reqURL := strings.TrimRight(c.baseURL, "/") + BasePath + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(headerRequestID, requestID)
	req.Header.Set(headerAcceptLanguage, c.Locale())
	if auth := c.auth.Authorization(); auth != "" {
		req.Header.Set(headerAuthorization, auth)
	}
	if body != nil {
		req.Header.Set(headerContentType, contentTypeJSON)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "request_id", requestID, "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request done", "request_id", requestID, "method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(started))

	return &Response{Status: resp.StatusCode, Body: respBody}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}
