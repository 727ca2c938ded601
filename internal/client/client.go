package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/deckcalc/internal/estimate"
	"github.com/muurk/deckcalc/internal/version"
)

// CalculatePath is the calculation endpoint path on the server
const CalculatePath = "/calculate"

// maxErrorBody bounds how much of an error response is kept
const maxErrorBody = 1024

// Client sends calculation requests to a deckcalc server
type Client struct {
	// BaseURL is the server base URL (e.g., "http://localhost:5000")
	BaseURL string

	// HTTPClient is the underlying HTTP client. No timeout is set by default.
	HTTPClient *http.Client

	// Logger receives request diagnostics
	Logger *zap.Logger
}

// New creates a client for the server at baseURL
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
		Logger:     zap.NewNop(),
	}
}

// WithLogger sets the client's logger and returns the client
func (c *Client) WithLogger(l *zap.Logger) *Client {
	if l != nil {
		c.Logger = l
	}
	return c
}

// Calculate posts req to /calculate and decodes the estimate.
// It makes exactly one attempt.
func (c *Client) Calculate(ctx context.Context, req estimate.Request) (*estimate.Estimate, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+CalculatePath, bytes.NewReader(body))
	if err != nil {
		return nil, ClassifyNetworkError("failed to create POST request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", version.UserAgent())

	c.Logger.Debug("Sending calculation request",
		zap.String("url", httpReq.URL.String()),
		zap.ByteString("body", body),
	)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, ClassifyNetworkError("POST request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := readErrorDetail(resp.Body)
		c.Logger.Warn("Calculation request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("detail", detail),
		)
		return nil, NewHTTPError(resp.StatusCode, detail)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ClassifyNetworkError("failed to read response body", err)
	}

	var est estimate.Estimate
	if err := json.Unmarshal(data, &est); err != nil {
		return nil, NewParseError("failed to parse JSON response", err)
	}

	c.Logger.Debug("Calculation response received",
		zap.Int("deck_boards", est.DeckBoards),
		zap.Int("fasteners", len(est.Fasteners)),
	)

	return &est, nil
}

// readErrorDetail extracts {"error": "..."} from an error body, falling
// back to the raw text.
func readErrorDetail(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(data))
}
