package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains the stream into a slice, failing on timeout.
func collect(t *testing.T, ch <-chan StreamEvent) []StreamEvent {
	t.Helper()
	var out []StreamEvent
	timeout := time.After(5 * time.Second)
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, evt)
		case <-timeout:
			t.Fatal("timed out draining stream")
		}
	}
}

func anthropicTestServer(t *testing.T, sse string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicAPIVersion, r.Header.Get("anthropic-version"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["stream"])

		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(sse))
	}))
}

func newTestAnthropicStreamer(baseURL string) *anthropicStreamer {
	return &anthropicStreamer{
		apiKey:  "test-key",
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

func TestAnthropicStream_TextDeltas(t *testing.T) {
	sse := "event: message_start\n" +
		"data: {\"type\":\"message_start\"}\n\n" +
		"event: content_block_start\n" +
		"data: {\"content_block\":{\"type\":\"text\"}}\n\n" +
		"event: content_block_delta\n" +
		"data: {\"delta\":{\"type\":\"text_delta\",\"text\":\"Hello\"}}\n\n" +
		"event: content_block_delta\n" +
		"data: {\"delta\":{\"type\":\"text_delta\",\"text\":\" there\"}}\n\n" +
		"event: content_block_stop\n" +
		"data: {}\n\n" +
		"event: message_stop\n" +
		"data: {}\n\n"
	srv := anthropicTestServer(t, sse)
	defer srv.Close()

	s := newTestAnthropicStreamer(srv.URL)
	ch, err := s.Stream(context.Background(), Request{Model: "claude-sonnet-4"}, []Message{{Role: RoleUser, Content: "hi"}})
	require.NoError(t, err)

	events := collect(t, ch)
	require.Len(t, events, 3)
	assert.Equal(t, StreamEvent{Type: EventTextDelta, Text: "Hello"}, events[0])
	assert.Equal(t, StreamEvent{Type: EventTextDelta, Text: " there"}, events[1])
	assert.Equal(t, EventDone, events[2].Type)
	assert.Equal(t, "Hello there", events[2].Text)
}

func TestAnthropicStream_ToolUseCoalescing(t *testing.T) {
	sse := "event: content_block_start\n" +
		"data: {\"content_block\":{\"type\":\"tool_use\",\"name\":\"end_chat\"}}\n\n" +
		"event: content_block_delta\n" +
		"data: {\"delta\":{\"type\":\"input_json_delta\",\"partial_json\":\"{\\\"deal_re\"}}\n\n" +
		"event: content_block_delta\n" +
		"data: {\"delta\":{\"type\":\"input_json_delta\",\"partial_json\":\"ached\\\": true}\"}}\n\n" +
		"event: content_block_stop\n" +
		"data: {}\n\n" +
		"event: message_stop\n" +
		"data: {}\n\n"
	srv := anthropicTestServer(t, sse)
	defer srv.Close()

	s := newTestAnthropicStreamer(srv.URL)
	ch, err := s.Stream(context.Background(), Request{
		Model: "claude-sonnet-4",
		Tools: []ToolSpec{{Name: "end_chat"}},
	}, nil)
	require.NoError(t, err)

	events := collect(t, ch)
	require.Len(t, events, 2)
	assert.Equal(t, EventToolCall, events[0].Type)
	assert.Equal(t, "end_chat", events[0].Name)
	assert.Equal(t, map[string]interface{}{"deal_reached": true}, events[0].Args)
	assert.Equal(t, EventDone, events[1].Type)
}

func TestAnthropicStream_MalformedToolArgsDropped(t *testing.T) {
	sse := "event: content_block_start\n" +
		"data: {\"content_block\":{\"type\":\"tool_use\",\"name\":\"assign_state\"}}\n\n" +
		"event: content_block_delta\n" +
		"data: {\"delta\":{\"type\":\"input_json_delta\",\"partial_json\":\"{not json\"}}\n\n" +
		"event: content_block_stop\n" +
		"data: {}\n\n" +
		"event: message_stop\n" +
		"data: {}\n\n"
	srv := anthropicTestServer(t, sse)
	defer srv.Close()

	s := newTestAnthropicStreamer(srv.URL)
	ch, err := s.Stream(context.Background(), Request{Model: "claude-sonnet-4"}, nil)
	require.NoError(t, err)

	events := collect(t, ch)
	require.Len(t, events, 1)
	assert.Equal(t, EventDone, events[0].Type)
}

func TestAnthropicStream_ErrorEvent(t *testing.T) {
	sse := "event: content_block_delta\n" +
		"data: {\"delta\":{\"type\":\"text_delta\",\"text\":\"partial\"}}\n\n" +
		"event: error\n" +
		"data: {\"error\":{\"type\":\"overloaded_error\",\"message\":\"try later\"}}\n\n"
	srv := anthropicTestServer(t, sse)
	defer srv.Close()

	s := newTestAnthropicStreamer(srv.URL)
	ch, err := s.Stream(context.Background(), Request{Model: "claude-sonnet-4"}, nil)
	require.NoError(t, err)

	events := collect(t, ch)
	require.Len(t, events, 2)
	assert.Equal(t, EventTextDelta, events[0].Type)
	assert.Equal(t, EventError, events[1].Type)
	assert.Contains(t, events[1].Text, "overloaded_error")
}

func TestAnthropicStream_TruncatedStreamFallsBackToDone(t *testing.T) {
	sse := "event: content_block_delta\n" +
		"data: {\"delta\":{\"type\":\"text_delta\",\"text\":\"cut off\"}}\n\n"
	srv := anthropicTestServer(t, sse)
	defer srv.Close()

	s := newTestAnthropicStreamer(srv.URL)
	ch, err := s.Stream(context.Background(), Request{Model: "claude-sonnet-4"}, nil)
	require.NoError(t, err)

	events := collect(t, ch)
	require.Len(t, events, 2)
	assert.Equal(t, EventDone, events[1].Type)
	assert.Equal(t, "cut off", events[1].Text)
}

func TestAnthropicStream_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"authentication_error"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := newTestAnthropicStreamer(srv.URL)
	_, err := s.Stream(context.Background(), Request{Model: "claude-sonnet-4"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic request failed")
}

func TestAnthropicBuildRequestBody(t *testing.T) {
	s := newTestAnthropicStreamer("http://unused")
	body, err := s.buildRequestBody(Request{
		Model:  "claude-sonnet-4",
		System: "You are terse.",
		Tools:  []ToolSpec{{Name: "end_chat", Description: "End it"}},
	}, []Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "claude-sonnet-4", decoded["model"])
	assert.Equal(t, "You are terse.", decoded["system"])
	assert.Equal(t, float64(defaultMaxTokens), decoded["max_tokens"])

	msgs := decoded["messages"].([]interface{})
	require.Len(t, msgs, 2)
	assert.Equal(t, "user", msgs[0].(map[string]interface{})["role"])
	assert.Equal(t, "assistant", msgs[1].(map[string]interface{})["role"])

	tools := decoded["tools"].([]interface{})
	require.Len(t, tools, 1)
	tool := tools[0].(map[string]interface{})
	assert.Equal(t, "end_chat", tool["name"])
	// A missing schema defaults to an empty object schema.
	assert.Equal(t, map[string]interface{}{"type": "object"}, tool["input_schema"])
}
