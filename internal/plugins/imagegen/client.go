package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/keyxmakerx/cardstudio/internal/config"
)

// maxResponseBytes bounds how much of an upstream body is read.
const maxResponseBytes = 20 << 20

// Client sends a prompt to the image model. A non-2xx upstream status is
// not an error: it comes back in the result so the caller can relay it.
type Client interface {
	Generate(ctx context.Context, prompt string) (*UpstreamResult, error)
}

// httpClient implements Client over HTTP with an outbound rate limit shared
// by all requests.
type httpClient struct {
	url     string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

// NewHTTPClient creates a Client from configuration.
func NewHTTPClient(cfg config.ImageGenConfig) Client {
	return &httpClient{
		url:     cfg.URL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}
}

// inferenceRequest is the upstream request body.
type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// Generate waits for a limiter slot and posts the prompt.
func (c *httpClient) Generate(ctx context.Context, prompt string) (*UpstreamResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	payload, err := json.Marshal(inferenceRequest{Inputs: prompt})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling image model: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading image model response: %w", err)
	}

	return &UpstreamResult{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
