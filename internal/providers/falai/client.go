package falai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"relay/internal/infra"
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = errors.New("falai: api key is required")

// DefaultEndpoint is the synchronous fal.ai image-editing endpoint this
// service targets. The upstream API has shipped several mutually
// inconsistent request shapes; this client commits to exactly one.
const DefaultEndpoint = "https://fal.run/fal-ai/nano-banana/edit"

// Options configures the fal.ai client.
type Options struct {
	APIKey         string
	Endpoint       string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls to the fal.ai image-editing API.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *infra.Logger
}

// EditRequest captures the inputs for a single edit call.
type EditRequest struct {
	Prompt       string
	ImageURL     string // data URI or https URL
	Resolution   string
	AspectRatio  string
	OutputFormat string
	NumImages    int
}

type editPayload struct {
	Prompt       string   `json:"prompt"`
	ImageURLs    []string `json:"image_urls"`
	NumImages    int      `json:"num_images"`
	AspectRatio  string   `json:"aspect_ratio"`
	OutputFormat string   `json:"output_format"`
	Resolution   string   `json:"resolution"`
}

// StatusError reports a non-2xx upstream response. The raw body is carried
// verbatim so callers can forward it as diagnostic detail.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("falai: status %d: %s", e.Code, strings.TrimSpace(e.Body))
}

// DecodeError reports an upstream body that was not valid JSON.
type DecodeError struct {
	Err  error
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("falai: decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// NoImageError reports a parsed upstream response with no recognizable
// image URL under any of the known keys.
type NoImageError struct {
	Body string
}

func (e *NoImageError) Error() string {
	return "falai: no image url in response"
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		// No timeout unless asked for: the edit endpoint is synchronous
		// and can legitimately take a while on 4K renders.
		httpClient = &http.Client{Timeout: opts.RequestTimeout}
	}
	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger,
	}
}

// HasCredentials reports whether the client can perform remote calls.
func (c *Client) HasCredentials() bool {
	return c.apiKey != ""
}

// Edit invokes the fal.ai endpoint once and returns the URL of the edited
// image. There are no retries: a transient upstream failure surfaces to the
// caller on the first attempt.
func (c *Client) Edit(ctx context.Context, req EditRequest) (string, error) {
	if !c.HasCredentials() {
		return "", ErrMissingAPIKey
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return "", errors.New("falai: prompt is required")
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		return "", errors.New("falai: image is required")
	}
	payload := editPayload{
		Prompt:       prompt,
		ImageURLs:    []string{req.ImageURL},
		NumImages:    req.NumImages,
		AspectRatio:  strings.TrimSpace(req.AspectRatio),
		OutputFormat: strings.TrimSpace(req.OutputFormat),
		Resolution:   strings.TrimSpace(req.Resolution),
	}
	if payload.NumImages <= 0 {
		payload.NumImages = 1
	}
	if payload.AspectRatio == "" {
		payload.AspectRatio = "auto"
	}
	if payload.OutputFormat == "" {
		payload.OutputFormat = "png"
	}
	if payload.Resolution == "" {
		payload.Resolution = "1K"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("falai: encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("falai: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Key "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("falai: http request: %w", err)
	}
	defer resp.Body.Close()

	// Read the full body as text first so the raw payload is available for
	// diagnostics regardless of whether it parses.
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("falai: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", &DecodeError{Err: err, Body: string(raw)}
	}

	imageURL := ExtractImageURL(decoded)
	if imageURL == "" {
		return "", &NoImageError{Body: string(raw)}
	}

	c.logger.Debug().
		Str("url", imageURL).
		Str("resolution", payload.Resolution).
		Msg("falai: edited image ready")
	return imageURL, nil
}
