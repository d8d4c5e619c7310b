package spritegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	// DefaultBaseURL is the OpenAI-compatible images endpoint root.
	DefaultBaseURL = "https://api.openai.com/v1"

	generationsPath = "/images/generations"
	requestTimeout  = 120 * time.Second
)

// ImageRequest is one generation call.
type ImageRequest struct {
	Prompt  string
	Size    string
	Model   string
	Quality string
}

// Generator produces PNG bytes for a prompt. Satisfied by *Client; the
// pipeline accepts the interface so tests can substitute a fake.
type Generator interface {
	GenerateImage(ctx context.Context, req ImageRequest) ([]byte, error)
}

// Client calls an OpenAI-style images API. 429 and 5xx responses retry
// with backoff; everything else fails fast.
type Client struct {
	baseURL string
	apiKey  string
	http    *retryablehttp.Client
}

// NewClient creates a client for the given endpoint root. apiKey goes
// out as a bearer token.
func NewClient(baseURL, apiKey string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = requestTimeout
	rc.Logger = slog.Default()
	return &Client{baseURL: baseURL, apiKey: apiKey, http: rc}
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// GenerateImage requests one image and returns the decoded PNG bytes.
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) ([]byte, error) {
	payload, err := json.Marshal(map[string]any{
		"prompt":  req.Prompt,
		"n":       1,
		"size":    req.Size,
		"model":   req.Model,
		"quality": req.Quality,
	})
	if err != nil {
		return nil, fmt.Errorf("spritegen: marshal request: %w", err)
	}

	hreq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+generationsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("spritegen: build request: %w", err)
	}
	hreq.Header.Set("Authorization", "Bearer "+c.apiKey)
	hreq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(hreq)
	if err != nil {
		return nil, fmt.Errorf("spritegen: images request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("spritegen: images API returned %d: %s", resp.StatusCode, body)
	}

	var out imageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("spritegen: decode response: %w", err)
	}
	if len(out.Data) == 0 || out.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("spritegen: images API returned no b64 payload")
	}

	img, err := base64.StdEncoding.DecodeString(out.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("spritegen: decode base64 image: %w", err)
	}
	return img, nil
}
