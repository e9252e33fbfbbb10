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

	"go.uber.org/zap"

	"projectbrain/internal/platform/clock"
	apperrors "projectbrain/internal/platform/errors"
	"projectbrain/internal/platform/id"
)

// Client is the JSON-over-HTTP transport shared by the chat and schedule
// adapters. It never retries and never authenticates.
type Client struct {
	baseURL    string
	httpClient *http.Client
	clock      clock.Clock
	ids        id.Generator
	log        *zap.Logger
}

// NewClient returns a client rooted at baseURL. A zero timeout means
// requests wait for as long as the server takes.
func NewClient(baseURL string, timeout time.Duration, clk clock.Clock, ids id.Generator, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		clock:      clk,
		ids:        ids,
		log:        log.Named("backend"),
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// Close drops idle keep-alive connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// PostJSON sends body (omitted when nil) to path and decodes the response
// into out. The HTTP status is returned even when decoding succeeds, since
// the backend reports some failures inside an otherwise valid JSON body.
func (c *Client) PostJSON(ctx context.Context, path string, body any, out any) (int, error) {
	requestID := c.ids.New()
	url := c.baseURL + path
	log := c.log.With(zap.String("request_id", requestID), zap.String("endpoint", path))

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal %s request: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return 0, fmt.Errorf("build %s request: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	started := c.clock.Now()
	log.Debug("request started", zap.String("url", url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err), zap.Duration("elapsed", c.clock.Now().Sub(started)))
		return 0, fmt.Errorf("%w: post %s: %v", apperrors.ErrBackendUnavailable, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("read response failed", zap.Int("status", resp.StatusCode), zap.Error(err))
		return resp.StatusCode, fmt.Errorf("%w: read %s response: %v", apperrors.ErrBackendUnavailable, path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Warn("response is not json",
			zap.Int("status", resp.StatusCode),
			zap.Int("bytes", len(raw)),
			zap.Error(err),
		)
		return resp.StatusCode, fmt.Errorf("%w: %s returned status %d: %v", apperrors.ErrMalformedResponse, path, resp.StatusCode, err)
	}

	log.Info("request finished",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(raw)),
		zap.Duration("elapsed", c.clock.Now().Sub(started)),
	)
	return resp.StatusCode, nil
}
