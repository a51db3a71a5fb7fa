package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// openAIStreamer streams completions from any OpenAI-compatible API.
type openAIStreamer struct {
	client *openai.Client
}

// Stream implements Streamer. Tool-call argument fragments are keyed by
// the delta index and coalesced until the stream ends; tool_call events
// are emitted after the text, before the terminal done.
func (s *openAIStreamer) Stream(ctx context.Context, req Request, history []Message) (<-chan StreamEvent, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	oaReq := openai.ChatCompletionRequest{
		Model:     req.Model,
		Messages:  messages,
		MaxTokens: maxTokens,
	}
	if req.ReasoningEffort != "" {
		oaReq.ReasoningEffort = req.ReasoningEffort
	}
	if len(req.Tools) > 0 {
		tools := make([]openai.Tool, len(req.Tools))
		for i, t := range req.Tools {
			tools[i] = openai.Tool{
				Type: openai.ToolTypeFunction,
				Function: &openai.FunctionDefinition{
					Name:        t.Name,
					Description: t.Description,
					Parameters:  t.Parameters,
				},
			}
		}
		oaReq.Tools = tools
	}

	stream, err := s.client.CreateChatCompletionStream(ctx, oaReq)
	if err != nil {
		return nil, err
	}

	out := make(chan StreamEvent, 16)
	go func() {
		defer close(out)
		defer func() { _ = stream.Close() }()

		var fullText strings.Builder

		// Partial tool calls accumulate by delta index; names arrive on
		// the first fragment, argument JSON in pieces.
		type partialCall struct {
			name string
			args strings.Builder
		}
		calls := make(map[int]*partialCall)

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				send(ctx, out, StreamEvent{Type: EventError, Text: err.Error()})
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			delta := resp.Choices[0].Delta

			if delta.Content != "" {
				fullText.WriteString(delta.Content)
				if !send(ctx, out, StreamEvent{Type: EventTextDelta, Text: delta.Content}) {
					return
				}
			}

			for _, tc := range delta.ToolCalls {
				idx := 0
				if tc.Index != nil {
					idx = *tc.Index
				}
				pc, ok := calls[idx]
				if !ok {
					pc = &partialCall{}
					calls[idx] = pc
				}
				if tc.Function.Name != "" {
					pc.name = tc.Function.Name
				}
				pc.args.WriteString(tc.Function.Arguments)
			}
		}

		// Emit completed tool calls in index order.
		indexes := make([]int, 0, len(calls))
		for i := range calls {
			indexes = append(indexes, i)
		}
		sort.Ints(indexes)
		for _, i := range indexes {
			pc := calls[i]
			evt, ok := finishToolCall(pc.name, pc.args.String())
			if !ok {
				continue
			}
			if !send(ctx, out, evt) {
				return
			}
		}

		send(ctx, out, StreamEvent{Type: EventDone, Text: fullText.String()})
	}()

	return out, nil
}

// finishToolCall parses accumulated argument JSON. Malformed arguments
// drop the call rather than failing the run.
func finishToolCall(name, rawArgs string) (StreamEvent, bool) {
	if name == "" {
		return StreamEvent{}, false
	}
	args := make(map[string]interface{})
	if rawArgs != "" {
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			slog.Warn("Dropping tool call with malformed arguments",
				"tool", name, "error", err)
			return StreamEvent{}, false
		}
	}
	return StreamEvent{Type: EventToolCall, Name: name, Args: args}, true
}

// send delivers an event unless the context is cancelled. Returns false
// when the consumer has gone away.
func send(ctx context.Context, out chan<- StreamEvent, evt StreamEvent) bool {
	select {
	case out <- evt:
		return true
	case <-ctx.Done():
		return false
	}
}
