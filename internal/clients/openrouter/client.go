package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yungbote/recallai-backend/internal/logger"
)

// Client talks to an OpenAI-compatible chat completions endpoint. Every method
// performs exactly one HTTP round trip; there is no retry.
type Client interface {
	// ChatText sends a single user prompt and returns the raw completion text.
	ChatText(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)

	// ChatJSON is ChatText constrained to the provider's JSON output mode.
	ChatJSON(ctx context.Context, prompt string, temperature float64) (string, error)
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type client struct {
	log        *logger.Logger
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(log *logger.Logger, cfg Config) Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "google/gemini-2.0-flash-001"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &client{
		log:        log.With("client", "OpenRouterClient"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *client) ChatText(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	req := chatCompletionRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	return c.complete(ctx, req)
}

func (c *client) ChatJSON(ctx context.Context, prompt string, temperature float64) (string, error) {
	req := chatCompletionRequest{
		Model:          c.model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		Temperature:    temperature,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}
	return c.complete(ctx, req)
}

func (c *client) complete(ctx context.Context, body chatCompletionRequest) (string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return "", &Error{Kind: KindGeneric, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", &buf)
	if err != nil {
		return "", &Error{Kind: KindGeneric, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", "http://localhost:3000")
	req.Header.Set("X-Title", "RecallAI")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Kind: KindGeneric, Err: err}
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return "", &Error{Kind: KindGeneric, StatusCode: resp.StatusCode, Err: readErr}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := &Error{
			Kind:       classifyStatus(resp.StatusCode, string(raw)),
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
		c.log.Warn("OpenRouter request failed", "status", resp.StatusCode, "kind", httpErr.Kind)
		return "", httpErr
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &Error{Kind: KindGeneric, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode completion response: %w", err)}
	}
	if len(parsed.Choices) == 0 {
		return "", &Error{Kind: KindGeneric, StatusCode: resp.StatusCode, Err: fmt.Errorf("completion response has no choices")}
	}
	return parsed.Choices[0].Message.Content, nil
}
