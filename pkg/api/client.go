package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
)

// Compile-time check to ensure Client implements coordinator.Controller interface.
var _ coordinator.Controller = (*Client)(nil)

const defaultClientTimeout = 30 * time.Second

// Client talks to a running control API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client for the API at baseURL, e.g. "http://localhost:3000".
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultClientTimeout},
	}
}

// Status fetches the status snapshot.
func (c *Client) Status(ctx context.Context) (coordinator.StatusSnapshot, error) {
	var snapshot coordinator.StatusSnapshot
	err := c.do(ctx, http.MethodGet, "/api/status", nil, &snapshot)
	return snapshot, err
}

// Pause pauses indexing.
func (c *Client) Pause(ctx context.Context) (coordinator.CommandResult, error) {
	var result coordinator.CommandResult
	err := c.do(ctx, http.MethodPost, "/api/pause", nil, &result)
	return result, err
}

// Resume resumes indexing.
func (c *Client) Resume(ctx context.Context) (coordinator.CommandResult, error) {
	var result coordinator.CommandResult
	err := c.do(ctx, http.MethodPost, "/api/resume", nil, &result)
	return result, err
}

// Reindex requests a reindex.
func (c *Client) Reindex(ctx context.Context, req coordinator.ReindexRequest) (coordinator.CommandResult, error) {
	var result coordinator.CommandResult
	err := c.do(ctx, http.MethodPost, "/api/reindex", req, &result)
	return result, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(APIKeyHeader, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(payload))}

		var errResp ErrorResponse
		if json.Unmarshal(payload, &errResp) == nil && errResp.Message != "" {
			apiErr.Message = errResp.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
