// Package llm provides a provider-agnostic streaming adapter over chat
// completion APIs. The provider is inferred from the model id: claude*
// models go to Anthropic, everything else to an OpenAI-compatible API.
package llm

// Stream event types. A successful stream is a sequence of text_delta
// and tool_call events terminated by exactly one done. A failed stream
// ends with an error event instead.
const (
	EventTextDelta = "text_delta"
	EventToolCall  = "tool_call"
	EventDone      = "done"
	EventError     = "error"
)

// StreamEvent is one tagged value produced by a provider stream.
type StreamEvent struct {
	Type string

	// Text carries the delta for text_delta, the full accumulated text
	// for done, and the error message for error.
	Text string

	// Name and Args are set for tool_call. Args is already parsed; tool
	// calls whose arguments fail to parse are dropped by the adapter.
	Name string
	Args map[string]interface{}
}

// Message is one turn of conversation history.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Chat history roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ToolSpec describes a tool offered to the model. Parameters is a JSON
// schema object.
type ToolSpec struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

// Request describes one completion run.
type Request struct {
	Model           string
	System          string
	Tools           []ToolSpec
	ReasoningEffort string
	MaxTokens       int
}

// defaultMaxTokens caps replies when the agent config does not say.
const defaultMaxTokens = 1024
