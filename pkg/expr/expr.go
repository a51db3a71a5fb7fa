// Package expr implements the branch-condition expression language used
// by page-graph actions. The grammar is deliberately tiny:
//
//	user_state.<name> OP <literal>
//
// with OP one of ==, !=, <, <=, >, >= and literals being integers,
// floats, true, false, or quoted strings. A hand-written parser keeps
// the security posture simple: no arbitrary code is ever evaluated.
package expr

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const statePrefix = "user_state."

// Evaluate parses and evaluates a branch condition against user state.
// Missing state keys yield an undefined value, which equals nothing:
// == is false, != is true, ordering comparators are false.
func Evaluate(expression string, state map[string]interface{}) (bool, error) {
	key, op, lit, err := parse(expression)
	if err != nil {
		return false, err
	}

	left, present := state[key]
	if !present {
		return op == "!=", nil
	}

	switch op {
	case "==":
		return equals(left, lit), nil
	case "!=":
		return !equals(left, lit), nil
	default:
		ln, lok := asNumber(left)
		rn, rok := asNumber(lit)
		if !lok || !rok {
			// Ordering comparators are defined for numbers only.
			return false, nil
		}
		switch op {
		case "<":
			return ln < rn, nil
		case "<=":
			return ln <= rn, nil
		case ">":
			return ln > rn, nil
		case ">=":
			return ln >= rn, nil
		}
	}
	return false, fmt.Errorf("unreachable operator %q", op)
}

// parse splits an expression into state key, operator and literal.
func parse(expression string) (key, op string, lit interface{}, err error) {
	s := strings.TrimSpace(expression)
	if !strings.HasPrefix(s, statePrefix) {
		return "", "", nil, fmt.Errorf("expression must start with %q: %q", statePrefix, expression)
	}
	s = s[len(statePrefix):]

	// Find the operator. Two-character operators are checked before
	// their one-character prefixes.
	opIdx := -1
	for _, candidate := range []string{"==", "!=", "<=", ">=", "<", ">"} {
		if i := strings.Index(s, candidate); i >= 0 && (opIdx == -1 || i < opIdx || (i == opIdx && len(candidate) > len(op))) {
			opIdx = i
			op = candidate
		}
	}
	if opIdx <= 0 {
		return "", "", nil, fmt.Errorf("no comparison operator in expression %q", expression)
	}

	key = strings.TrimSpace(s[:opIdx])
	if key == "" {
		return "", "", nil, fmt.Errorf("empty state key in expression %q", expression)
	}

	rhs := strings.TrimSpace(s[opIdx+len(op):])
	lit, err = parseLiteral(rhs)
	if err != nil {
		return "", "", nil, fmt.Errorf("invalid literal in expression %q: %w", expression, err)
	}
	return key, op, lit, nil
}

// parseLiteral parses the right-hand side of a comparison.
func parseLiteral(s string) (interface{}, error) {
	if s == "" {
		return nil, fmt.Errorf("missing literal")
	}

	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1], nil
		}
	}

	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}

	return nil, fmt.Errorf("unrecognized literal %q", s)
}

// equals compares a state value to a parsed literal. Numbers compare
// numerically regardless of the stored width; other types must match.
func equals(left, right interface{}) bool {
	if ln, lok := asNumber(left); lok {
		rn, rok := asNumber(right)
		return rok && ln == rn
	}

	switch l := left.(type) {
	case string:
		r, ok := right.(string)
		return ok && l == r
	case bool:
		r, ok := right.(bool)
		return ok && l == r
	default:
		return false
	}
}

// asNumber converts JSON-decoded numeric representations to float64.
func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
