package models

import "time"

// Session start statuses returned by POST /sessions/start.
const (
	StartStatusCreated = "created"
	StartStatusResumed = "resumed"
	StartStatusBlocked = "blocked"
)

// ProlificInfo carries the query parameters Prolific appends to study
// URLs. Used for resumption when the participant is not signed in.
type ProlificInfo struct {
	PID       string `json:"pid"`
	StudyID   string `json:"studyId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// StartSessionRequest is the body of POST /sessions/start.
type StartSessionRequest struct {
	ConfigID string        `json:"configId"`
	Prolific *ProlificInfo `json:"prolific,omitempty"`
}

// SessionSnapshot is the canonical session view returned by start, get
// and advance.
type SessionSnapshot struct {
	SessionID     string                 `json:"sessionId"`
	ConfigID      string                 `json:"configId"`
	CurrentPageID string                 `json:"currentPageId"`
	Page          Page                   `json:"page"`
	UserState     map[string]interface{} `json:"user_state"`
	EndedAt       *time.Time             `json:"endedAt"`
	Deduplicated  bool                   `json:"deduplicated,omitempty"`
}

// StartSessionResponse is the body of POST /sessions/start.
type StartSessionResponse struct {
	Status string `json:"status"`
	SessionSnapshot
	Message string `json:"message,omitempty"`
}

// AdvanceRequest is the body of POST /sessions/:id/advance. Exactly one
// of Target and Branches must be set; with Branches the server resolves
// the target against the session's user_state.
type AdvanceRequest struct {
	Target         string   `json:"target,omitempty"`
	Branches       []Branch `json:"branches,omitempty"`
	IdempotencyKey string   `json:"idempotencyKey"`
}

// UpdateStateRequest is the body of POST /sessions/:id/state.
type UpdateStateRequest struct {
	Updates        map[string]interface{} `json:"updates"`
	IdempotencyKey string                 `json:"idempotencyKey"`
}

// UpdateStateResponse is the body of POST /sessions/:id/state.
type UpdateStateResponse struct {
	Success      bool `json:"success"`
	Deduplicated bool `json:"deduplicated,omitempty"`
}

// SubmitEventRequest is the body of POST /sessions/:id/events.
type SubmitEventRequest struct {
	Type           string                 `json:"type"`
	Timestamp      *time.Time             `json:"timestamp,omitempty"`
	ComponentType  string                 `json:"componentType,omitempty"`
	ComponentID    string                 `json:"componentId,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	IdempotencyKey string                 `json:"idempotencyKey,omitempty"`
}

// SubmitEventResponse is the body of POST /sessions/:id/events.
type SubmitEventResponse struct {
	EventID      string `json:"eventId"`
	Deduplicated bool   `json:"deduplicated,omitempty"`
}

// RandomizeRequest is the body of POST /sessions/:id/randomize.
type RandomizeRequest struct {
	AssignmentType string   `json:"assignmentType,omitempty"`
	Conditions     []string `json:"conditions,omitempty"`
	StateKey       string   `json:"stateKey,omitempty"`
}

// RandomizeResponse is the body of POST /sessions/:id/randomize.
type RandomizeResponse struct {
	Condition string `json:"condition"`
	Existing  bool   `json:"existing"`
}
