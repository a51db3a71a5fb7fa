package expr

import (
	"log/slog"

	"github.com/greenroomlab/greenroom/pkg/models"
)

// ResolveBranch selects the target of the first branch whose condition
// evaluates true against the given state. A branch without a condition is
// the default arm and always matches. Evaluation errors are logged and
// treated as non-matches so a typo in one branch cannot strand a
// participant. Returns ("", false) when no branch matches.
func ResolveBranch(branches []models.Branch, state map[string]interface{}) (string, bool) {
	for _, b := range branches {
		if b.When == "" {
			return b.Target, true
		}
		ok, err := Evaluate(b.When, state)
		if err != nil {
			slog.Warn("Branch condition failed to evaluate",
				"expression", b.When, "error", err)
			continue
		}
		if ok {
			return b.Target, true
		}
	}
	return "", false
}
