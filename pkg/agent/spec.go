package agent

import (
	"encoding/json"
	"log/slog"

	"github.com/greenroomlab/greenroom/pkg/llm"
	"github.com/greenroomlab/greenroom/pkg/models"
)

// agentSpec is one agent declared in a chat component's props. Tools use
// the same shape the providers expect; Parameters is a JSON schema.
type agentSpec struct {
	ID              string         `json:"id"`
	Model           string         `json:"model"`
	System          string         `json:"system,omitempty"`
	Tools           []llm.ToolSpec `json:"tools,omitempty"`
	ReasoningEffort string         `json:"reasoningEffort,omitempty"`
	MaxTokens       int            `json:"maxTokens,omitempty"`
}

// agentsForPage extracts the agent roster from the page's chat
// component. Props arrive as decoded JSON, so the agents list is
// recovered through a marshal round-trip. Malformed entries disable
// agents for the page rather than failing the chat.
func agentsForPage(page models.Page) []agentSpec {
	for _, c := range page.Components {
		if c.Type != "chat" {
			continue
		}
		raw, ok := c.Props["agents"]
		if !ok {
			return nil
		}
		buf, err := json.Marshal(raw)
		if err != nil {
			slog.Warn("Unparseable agents prop", "page_id", page.ID, "error", err)
			return nil
		}
		var specs []agentSpec
		if err := json.Unmarshal(buf, &specs); err != nil {
			slog.Warn("Malformed agents prop", "page_id", page.ID, "error", err)
			return nil
		}
		// Agents without a model cannot run; drop them individually.
		valid := specs[:0]
		for _, s := range specs {
			if s.ID == "" || s.Model == "" {
				slog.Warn("Skipping agent without id or model", "page_id", page.ID)
				continue
			}
			valid = append(valid, s)
		}
		return valid
	}
	return nil
}
