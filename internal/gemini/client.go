// Package gemini wraps the Gemini API behind the small Generator capability
// used by the dialogue flow, so the flow can be tested with a stub.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel matches the model the assistant was tuned against.
const DefaultModel = "gemini-2.5-flash-lite"

// ErrEmptyResponse is returned when the model call succeeds but the response
// carries no text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// Generator produces text for a prompt. Implemented by Client; tests use a
// deterministic stub.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client calls the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// ClientOption customizes a Client.
type ClientOption func(*options)

type options struct {
	httpOptions *genai.HTTPOptions
}

// WithHTTPOptions overrides the HTTP options of the underlying SDK client
// (used by tests to point at a local server).
func WithHTTPOptions(ho genai.HTTPOptions) ClientOption {
	return func(o *options) {
		o.httpOptions = &ho
	}
}

// NewClient creates a Gemini client for the given API key and model. An
// empty model selects DefaultModel.
func NewClient(ctx context.Context, apiKey, model string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if o.httpOptions != nil {
		cfg.HTTPOptions = *o.httpOptions
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Generate sends a single prompt and returns the response text. One attempt,
// no retries; the dialogue flow turns failures into a user-safe message.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
