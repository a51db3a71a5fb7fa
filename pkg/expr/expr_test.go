package expr

import (
	"testing"

	"github.com/greenroomlab/greenroom/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Equality(t *testing.T) {
	state := map[string]interface{}{
		"score":     float64(10),
		"name":      "alice",
		"consented": true,
	}

	tests := []struct {
		expr string
		want bool
	}{
		{`user_state.score == 10`, true},
		{`user_state.score == 10.0`, true},
		{`user_state.score == 11`, false},
		{`user_state.score != 11`, true},
		{`user_state.name == "alice"`, true},
		{`user_state.name == 'alice'`, true},
		{`user_state.name == "bob"`, false},
		{`user_state.name != "bob"`, true},
		{`user_state.consented == true`, true},
		{`user_state.consented == false`, false},
		{`user_state.consented != false`, true},
		// Type mismatches are never equal.
		{`user_state.name == 10`, false},
		{`user_state.consented == "true"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr, state)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_Ordering(t *testing.T) {
	state := map[string]interface{}{
		"score": float64(10),
		"name":  "alice",
	}

	tests := []struct {
		expr string
		want bool
	}{
		{`user_state.score < 11`, true},
		{`user_state.score < 10`, false},
		{`user_state.score <= 10`, true},
		{`user_state.score > 9.5`, true},
		{`user_state.score >= 10`, true},
		{`user_state.score >= 10.5`, false},
		// Ordering on non-numeric operands is false, never an error.
		{`user_state.name < "bob"`, false},
		{`user_state.name > "aaa"`, false},
		{`user_state.score < "10"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr, state)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_MissingKey(t *testing.T) {
	state := map[string]interface{}{}

	// undefined equals nothing
	got, err := Evaluate(`user_state.missing == 1`, state)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = Evaluate(`user_state.missing != 1`, state)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = Evaluate(`user_state.missing < 1`, state)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestEvaluate_ParseErrors(t *testing.T) {
	state := map[string]interface{}{"x": float64(1)}

	for _, expr := range []string{
		``,
		`x == 1`,             // missing user_state prefix
		`user_state.x`,       // no operator
		`user_state. == 1`,   // empty key
		`user_state.x == `,   // missing literal
		`user_state.x == foo`, // bare word is not a literal
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := Evaluate(expr, state)
			assert.Error(t, err)
		})
	}
}

func TestResolveBranch(t *testing.T) {
	state := map[string]interface{}{"score": float64(5)}

	branches := []models.Branch{
		{When: `user_state.score > 10`, Target: "high"},
		{When: `user_state.score > 3`, Target: "mid"},
		{Target: "default"},
	}

	target, ok := ResolveBranch(branches, state)
	require.True(t, ok)
	assert.Equal(t, "mid", target)

	// Default arm short-circuits the rest.
	target, ok = ResolveBranch([]models.Branch{
		{Target: "default"},
		{When: `user_state.score > 3`, Target: "mid"},
	}, state)
	require.True(t, ok)
	assert.Equal(t, "default", target)

	// Invalid conditions are skipped, not fatal.
	target, ok = ResolveBranch([]models.Branch{
		{When: `garbage`, Target: "broken"},
		{When: `user_state.score == 5`, Target: "exact"},
	}, state)
	require.True(t, ok)
	assert.Equal(t, "exact", target)

	// No match at all.
	_, ok = ResolveBranch([]models.Branch{
		{When: `user_state.score > 10`, Target: "high"},
	}, state)
	assert.False(t, ok)
}
