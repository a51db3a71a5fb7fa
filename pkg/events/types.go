// Package events provides the in-process event bus that fans out realtime
// updates to SSE subscribers. Each process has one Bus instance; sessions
// served by other replicas must be routed by sticky sessions at the load
// balancer.
package events

import "time"

// Event types broadcast over session streams.
const (
	TypeConnected        = "connected"
	TypeHeartbeat        = "heartbeat"
	TypeChatMessage      = "chat_message"
	TypeChatMessageDelta = "chat_message_delta"
	TypeChatEnded        = "chat_ended"
	TypeStateUpdated     = "state_updated"
	TypeMatchFound       = "match_found"
	TypeMatchTimeout     = "match_timeout"
	TypePageChange       = "page_change"
	TypeUserStateChange  = "user_state_change"
)

// Event is a single realtime update delivered to a session's SSE stream.
type Event struct {
	Type      string                 `json:"type"`
	SessionID string                 `json:"sessionId,omitempty"`
	GroupID   string                 `json:"groupId,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// NewEvent creates an event of the given type with the timestamp set.
func NewEvent(eventType string, data map[string]interface{}) Event {
	return Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}
