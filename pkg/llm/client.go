package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Streamer produces a stream of tagged events for one completion run.
// The returned channel is closed after the terminal done or error event,
// or when the context is cancelled.
type Streamer interface {
	Stream(ctx context.Context, req Request, history []Message) (<-chan StreamEvent, error)
}

// Config carries provider credentials.
type Config struct {
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	AnthropicAPIKey string
}

// Client routes requests to the provider inferred from the model id.
type Client struct {
	openai    *openAIStreamer
	anthropic *anthropicStreamer
}

// NewClient creates a routing client from provider credentials.
func NewClient(cfg Config) *Client {
	oaCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		oaCfg.BaseURL = cfg.OpenAIBaseURL
	}
	return &Client{
		openai: &openAIStreamer{client: openai.NewClientWithConfig(oaCfg)},
		anthropic: &anthropicStreamer{
			apiKey:  cfg.AnthropicAPIKey,
			baseURL: anthropicAPIBase,
			http:    &http.Client{Timeout: 5 * time.Minute},
		},
	}
}

// Stream dispatches to the provider for the request's model.
func (c *Client) Stream(ctx context.Context, req Request, history []Message) (<-chan StreamEvent, error) {
	if strings.HasPrefix(req.Model, "claude") {
		return c.anthropic.Stream(ctx, req, history)
	}
	return c.openai.Stream(ctx, req, history)
}
