package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenroomlab/greenroom/pkg/models"
)

func chatPage(agents interface{}) models.Page {
	return models.Page{
		ID: "negotiation",
		Components: []models.Component{
			{Type: "text", ID: "intro", Props: map[string]interface{}{"content": "hello"}},
			{Type: "chat", ID: "chat-1", Props: map[string]interface{}{"agents": agents}},
		},
	}
}

func TestAgentsForPage(t *testing.T) {
	t.Run("parses roster from chat component", func(t *testing.T) {
		specs := agentsForPage(chatPage([]interface{}{
			map[string]interface{}{
				"id":     "seller",
				"model":  "gpt-4o",
				"system": "You are the seller.",
				"tools": []interface{}{
					map[string]interface{}{
						"name":        "end_chat",
						"description": "End the negotiation",
					},
				},
			},
			map[string]interface{}{
				"id":              "observer",
				"model":           "claude-sonnet-4",
				"reasoningEffort": "low",
				"maxTokens":       float64(512),
			},
		}))

		require.Len(t, specs, 2)
		assert.Equal(t, "seller", specs[0].ID)
		assert.Equal(t, "gpt-4o", specs[0].Model)
		assert.Equal(t, "You are the seller.", specs[0].System)
		require.Len(t, specs[0].Tools, 1)
		assert.Equal(t, "end_chat", specs[0].Tools[0].Name)
		assert.Equal(t, "low", specs[1].ReasoningEffort)
		assert.Equal(t, 512, specs[1].MaxTokens)
	})

	t.Run("drops agents missing id or model", func(t *testing.T) {
		specs := agentsForPage(chatPage([]interface{}{
			map[string]interface{}{"id": "nameless"},
			map[string]interface{}{"id": "ok", "model": "gpt-4o-mini"},
			map[string]interface{}{"model": "gpt-4o"},
		}))

		require.Len(t, specs, 1)
		assert.Equal(t, "ok", specs[0].ID)
	})

	t.Run("no chat component", func(t *testing.T) {
		page := models.Page{ID: "survey", Components: []models.Component{
			{Type: "form", ID: "q1"},
		}}
		assert.Empty(t, agentsForPage(page))
	})

	t.Run("chat without agents prop", func(t *testing.T) {
		page := models.Page{ID: "peer", Components: []models.Component{
			{Type: "chat", ID: "chat-1", Props: map[string]interface{}{}},
		}}
		assert.Empty(t, agentsForPage(page))
	})

	t.Run("malformed agents prop", func(t *testing.T) {
		assert.Empty(t, agentsForPage(chatPage("not a list")))
	})
}
