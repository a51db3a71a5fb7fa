package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAITestServer(t *testing.T, chunks []string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "text/event-stream")
		for _, chunk := range chunks {
			_, _ = w.Write([]byte("data: " + chunk + "\n\n"))
		}
		_, _ = w.Write([]byte("data: [DONE]\n\n"))
	}))
}

func newTestOpenAIStreamer(baseURL string) *openAIStreamer {
	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = baseURL
	return &openAIStreamer{client: openai.NewClientWithConfig(cfg)}
}

func TestOpenAIStream_TextDeltas(t *testing.T) {
	srv := openAITestServer(t, []string{
		`{"choices":[{"delta":{"content":"Hel"}}]}`,
		`{"choices":[{"delta":{"content":"lo"}}]}`,
	})
	defer srv.Close()

	s := newTestOpenAIStreamer(srv.URL)
	ch, err := s.Stream(context.Background(), Request{Model: "gpt-4o"}, []Message{{Role: RoleUser, Content: "hi"}})
	require.NoError(t, err)

	events := collect(t, ch)
	require.Len(t, events, 3)
	assert.Equal(t, StreamEvent{Type: EventTextDelta, Text: "Hel"}, events[0])
	assert.Equal(t, StreamEvent{Type: EventTextDelta, Text: "lo"}, events[1])
	assert.Equal(t, EventDone, events[2].Type)
	assert.Equal(t, "Hello", events[2].Text)
}

func TestOpenAIStream_ToolCallCoalescing(t *testing.T) {
	srv := openAITestServer(t, []string{
		`{"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"name":"assign_state","arguments":"{\"path\":"}}]}}]}`,
		`{"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"arguments":"\"score\",\"value\":7}"}}]}}]}`,
		`{"choices":[{"delta":{"tool_calls":[{"index":1,"function":{"name":"end_chat","arguments":"{}"}}]}}]}`,
	})
	defer srv.Close()

	s := newTestOpenAIStreamer(srv.URL)
	ch, err := s.Stream(context.Background(), Request{
		Model: "gpt-4o",
		Tools: []ToolSpec{{Name: "assign_state"}, {Name: "end_chat"}},
	}, nil)
	require.NoError(t, err)

	events := collect(t, ch)
	require.Len(t, events, 3)
	assert.Equal(t, EventToolCall, events[0].Type)
	assert.Equal(t, "assign_state", events[0].Name)
	assert.Equal(t, map[string]interface{}{"path": "score", "value": float64(7)}, events[0].Args)
	assert.Equal(t, "end_chat", events[1].Name)
	assert.Equal(t, EventDone, events[2].Type)
}

func TestFinishToolCall(t *testing.T) {
	t.Run("parses arguments", func(t *testing.T) {
		evt, ok := finishToolCall("end_chat", `{"deal_reached": true, "agreed_price": 42}`)
		require.True(t, ok)
		assert.Equal(t, "end_chat", evt.Name)
		assert.Equal(t, map[string]interface{}{"deal_reached": true, "agreed_price": float64(42)}, evt.Args)
	})

	t.Run("empty arguments yield empty map", func(t *testing.T) {
		evt, ok := finishToolCall("end_chat", "")
		require.True(t, ok)
		assert.Empty(t, evt.Args)
	})

	t.Run("malformed arguments drop the call", func(t *testing.T) {
		_, ok := finishToolCall("end_chat", "{broken")
		assert.False(t, ok)
	})

	t.Run("nameless call dropped", func(t *testing.T) {
		_, ok := finishToolCall("", "{}")
		assert.False(t, ok)
	})
}

func TestClientRoutesByModelPrefix(t *testing.T) {
	c := NewClient(Config{OpenAIAPIKey: "k1", AnthropicAPIKey: "k2"})

	// Routing is by model id prefix only; no network involved here.
	assert.NotNil(t, c.openai)
	assert.NotNil(t, c.anthropic)
}
