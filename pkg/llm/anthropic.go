package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	anthropicAPIBase    = "https://api.anthropic.com/v1"
	anthropicAPIVersion = "2023-06-01"
)

// anthropicStreamer streams completions from the Anthropic Messages API.
// The SSE wire format is consumed directly; tool_use input JSON arrives
// in input_json_delta fragments that are coalesced until the enclosing
// content block stops.
type anthropicStreamer struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

type anthropicContentBlockStart struct {
	ContentBlock struct {
		Type string `json:"type"`
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"content_block"`
}

type anthropicContentBlockDelta struct {
	Delta struct {
		Type        string `json:"type"`
		Text        string `json:"text"`
		PartialJSON string `json:"partial_json"`
	} `json:"delta"`
}

type anthropicError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Stream implements Streamer.
func (s *anthropicStreamer) Stream(ctx context.Context, req Request, history []Message) (<-chan StreamEvent, error) {
	body, err := s.buildRequestBody(req, history)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", s.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicAPIVersion)

	resp, err := s.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer func() { _ = resp.Body.Close() }()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("anthropic request failed: %s: %s", resp.Status, string(msg))
	}

	out := make(chan StreamEvent, 16)
	go func() {
		defer close(out)
		defer func() { _ = resp.Body.Close() }()

		var fullText strings.Builder

		// Current tool_use block being assembled, nil between blocks.
		var toolName string
		var toolJSON strings.Builder
		inToolBlock := false

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		var currentEvent string

		for scanner.Scan() {
			line := scanner.Text()

			if strings.HasPrefix(line, "event: ") {
				currentEvent = strings.TrimPrefix(line, "event: ")
				continue
			}
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			data := strings.TrimPrefix(line, "data: ")

			switch currentEvent {
			case "content_block_start":
				var ev anthropicContentBlockStart
				if err := json.Unmarshal([]byte(data), &ev); err == nil && ev.ContentBlock.Type == "tool_use" {
					inToolBlock = true
					toolName = strings.TrimSpace(ev.ContentBlock.Name)
					toolJSON.Reset()
				}

			case "content_block_delta":
				var ev anthropicContentBlockDelta
				if err := json.Unmarshal([]byte(data), &ev); err != nil {
					continue
				}
				switch ev.Delta.Type {
				case "text_delta":
					fullText.WriteString(ev.Delta.Text)
					if !send(ctx, out, StreamEvent{Type: EventTextDelta, Text: ev.Delta.Text}) {
						return
					}
				case "input_json_delta":
					if inToolBlock {
						toolJSON.WriteString(ev.Delta.PartialJSON)
					}
				}

			case "content_block_stop":
				if inToolBlock {
					if evt, ok := finishToolCall(toolName, toolJSON.String()); ok {
						if !send(ctx, out, evt) {
							return
						}
					}
					inToolBlock = false
				}

			case "error":
				var ev anthropicError
				msg := data
				if err := json.Unmarshal([]byte(data), &ev); err == nil {
					msg = fmt.Sprintf("%s: %s", ev.Error.Type, ev.Error.Message)
				}
				send(ctx, out, StreamEvent{Type: EventError, Text: msg})
				return

			case "message_stop":
				send(ctx, out, StreamEvent{Type: EventDone, Text: fullText.String()})
				return
			}
		}

		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			send(ctx, out, StreamEvent{Type: EventError, Text: err.Error()})
			return
		}
		if ctx.Err() != nil {
			return
		}
		// Stream ended without message_stop; treat what we have as done.
		send(ctx, out, StreamEvent{Type: EventDone, Text: fullText.String()})
	}()

	return out, nil
}

func (s *anthropicStreamer) buildRequestBody(req Request, history []Message) ([]byte, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	messages := make([]map[string]interface{}, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role == RoleAssistant {
			role = "assistant"
		}
		messages = append(messages, map[string]interface{}{
			"role":    role,
			"content": m.Content,
		})
	}

	body := map[string]interface{}{
		"model":      req.Model,
		"max_tokens": maxTokens,
		"messages":   messages,
		"stream":     true,
	}
	if req.System != "" {
		body["system"] = req.System
	}
	if len(req.Tools) > 0 {
		tools := make([]map[string]interface{}, len(req.Tools))
		for i, t := range req.Tools {
			params := t.Parameters
			if params == nil {
				params = map[string]interface{}{"type": "object"}
			}
			tools[i] = map[string]interface{}{
				"name":         t.Name,
				"description":  t.Description,
				"input_schema": params,
			}
		}
		body["tools"] = tools
	}

	return json.Marshal(body)
}
