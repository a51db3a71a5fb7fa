package models

// Matchmaking statuses.
const (
	MatchStatusWaiting   = "waiting"
	MatchStatusMatched   = "matched"
	MatchStatusCancelled = "cancelled"
	MatchStatusNotFound  = "not_found"
)

// MatchmakeRequest is the body of POST /sessions/:id/matchmake.
type MatchmakeRequest struct {
	PoolID         string      `json:"poolId"`
	NumUsers       int         `json:"num_users"`
	TimeoutSeconds int         `json:"timeoutSeconds"`
	TimeoutTarget  string      `json:"timeoutTarget,omitempty"`
	Assignment     *Assignment `json:"assignment,omitempty"`
}

// Assignment configures treatment assignment for a formed group.
type Assignment struct {
	Type       string   `json:"type,omitempty"`
	Conditions []string `json:"conditions,omitempty"`
}

// MatchmakeResponse is the body of POST /sessions/:id/matchmake.
// Position is set for waiting, GroupID/Treatment for matched.
type MatchmakeResponse struct {
	Status    string `json:"status"`
	Position  int    `json:"position,omitempty"`
	GroupID   string `json:"groupId,omitempty"`
	Treatment string `json:"treatment,omitempty"`
}

// CancelMatchmakeRequest is the body of POST /sessions/:id/matchmake/cancel.
type CancelMatchmakeRequest struct {
	PoolID string `json:"poolId"`
}

// CancelMatchmakeResponse is the body of POST /sessions/:id/matchmake/cancel.
type CancelMatchmakeResponse struct {
	Status string `json:"status"`
}
