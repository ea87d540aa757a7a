package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const systemPrompt = "You are a digital-marketing and copywriting expert. Your task is to produce complete content to sell digital products."

// Failures callers branch on with errors.Is / errors.As.
var (
	// ErrNotConfigured means the service credential is absent.
	ErrNotConfigured = errors.New("openrouter: API key not configured")
	// ErrEmptyResponse means the endpoint answered 200 but carried no usable
	// message content.
	ErrEmptyResponse = errors.New("openrouter: no usable message content")
)

// UpstreamError is a non-success HTTP status from the generation endpoint.
// The body is kept for internal diagnostics only.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("openrouter: request failed with status %d: %s", e.Status, e.Body)
}

// TransportError wraps a network-level failure reaching the endpoint.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "openrouter: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	// ProxyURL optionally routes egress through a proxy. Purely a transport
	// concern; nothing outside this package knows about it.
	ProxyURL string
	Timeout  time.Duration
}

// Client sends one synchronous chat completion per Generate call. No retries,
// no streaming; callers needing resilience must wrap it.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openrouter.ai/api/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "openai/gpt-4o"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 2 * time.Minute
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.ProxyURL != "" {
		if proxy, err := url.Parse(cfg.ProxyURL); err == nil {
			transport.Proxy = http.ProxyURL(proxy)
		}
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends the prompt as the user turn of a single chat completion and
// returns the raw reply content, trimmed.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openrouter: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openrouter: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return "", &TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	// Anything that is not choices[0].message.content counts as empty.
	var out chatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEmptyResponse, err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
