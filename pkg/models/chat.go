package models

import "time"

// Sender types for chat messages.
const (
	SenderParticipant = "participant"
	SenderAgent       = "agent"
	SenderSystem      = "system"
)

// SendMessageRequest is the body of POST /chat/:groupId/send.
type SendMessageRequest struct {
	SessionID      string `json:"sessionId"`
	Content        string `json:"content"`
	SenderType     string `json:"senderType,omitempty"`
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

// SendMessageResponse is the body of POST /chat/:groupId/send.
type SendMessageResponse struct {
	MessageID    string    `json:"messageId"`
	CreatedAt    time.Time `json:"createdAt"`
	Deduplicated bool      `json:"deduplicated,omitempty"`
}

// ChatMessageView is one message in GET /chat/:groupId/history.
type ChatMessageView struct {
	MessageID  string    `json:"messageId"`
	GroupID    string    `json:"groupId"`
	SenderID   string    `json:"senderId"`
	SenderType string    `json:"senderType"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// HistoryResponse is the body of GET /chat/:groupId/history.
type HistoryResponse struct {
	Messages []ChatMessageView `json:"messages"`
}

// StartAgentsRequest is the body of POST /chat/:groupId/start-agents.
type StartAgentsRequest struct {
	SessionID string `json:"sessionId"`
}
