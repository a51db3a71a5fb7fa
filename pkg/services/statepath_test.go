package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStatePath(t *testing.T) {
	valid := []string{"treatment", "survey.q1", "a.b.c", "chat_ended"}
	for _, path := range valid {
		assert.NoError(t, validateStatePath(path), path)
	}

	invalid := []string{"", "$set", "price.$gt", ".leading", "trailing.", "."}
	for _, path := range invalid {
		err := validateStatePath(path)
		require.Error(t, err, path)
		assert.True(t, IsValidationError(err), path)
	}
}

func TestSetStatePath(t *testing.T) {
	t.Run("top level", func(t *testing.T) {
		state := map[string]interface{}{}
		setStatePath(state, "treatment", "control")
		assert.Equal(t, "control", state["treatment"])
	})

	t.Run("creates intermediate maps", func(t *testing.T) {
		state := map[string]interface{}{}
		setStatePath(state, "survey.page1.q1", 5)
		assert.Equal(t, map[string]interface{}{
			"survey": map[string]interface{}{
				"page1": map[string]interface{}{"q1": 5},
			},
		}, state)
	})

	t.Run("replaces without merging", func(t *testing.T) {
		state := map[string]interface{}{
			"survey": map[string]interface{}{"q1": 1, "q2": 2},
		}
		setStatePath(state, "survey.q1", 10)
		assert.Equal(t, map[string]interface{}{
			"survey": map[string]interface{}{"q1": 10, "q2": 2},
		}, state)
	})

	t.Run("overwrites non-map intermediate", func(t *testing.T) {
		state := map[string]interface{}{"a": "scalar"}
		setStatePath(state, "a.b", true)
		assert.Equal(t, map[string]interface{}{
			"a": map[string]interface{}{"b": true},
		}, state)
	})
}

func TestGetStatePath(t *testing.T) {
	state := map[string]interface{}{
		"treatment": "control",
		"survey":    map[string]interface{}{"q1": 5},
		"flag":      false,
	}

	v, ok := getStatePath(state, "treatment")
	assert.True(t, ok)
	assert.Equal(t, "control", v)

	v, ok = getStatePath(state, "survey.q1")
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	// Present but falsy still reads as present.
	v, ok = getStatePath(state, "flag")
	assert.True(t, ok)
	assert.Equal(t, false, v)

	_, ok = getStatePath(state, "missing")
	assert.False(t, ok)

	_, ok = getStatePath(state, "treatment.nested")
	assert.False(t, ok)
}
