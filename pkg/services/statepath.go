package services

import "strings"

// validateStatePath rejects paths that could be interpreted as query
// operators or produce empty segments. Rules: no '$' anywhere, no
// leading or trailing dot.
func validateStatePath(path string) error {
	if path == "" {
		return NewValidationError("updates", "empty state path")
	}
	if strings.Contains(path, "$") {
		return NewValidationError("updates", "state path must not contain '$'")
	}
	if strings.HasPrefix(path, ".") || strings.HasSuffix(path, ".") {
		return NewValidationError("updates", "state path must not start or end with '.'")
	}
	return nil
}

// setStatePath sets a dotted path in the state tree, creating intermediate
// maps as needed. Assignment replaces whatever is at the path; there is no
// recursive merging. A non-map intermediate value is overwritten by a map.
func setStatePath(state map[string]interface{}, path string, value interface{}) {
	segments := strings.Split(path, ".")
	node := state
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]interface{})
		if !ok {
			child = make(map[string]interface{})
			node[seg] = child
		}
		node = child
	}
	node[segments[len(segments)-1]] = value
}

// getStatePath reads a dotted path from the state tree. The second return
// is false when any segment is missing.
func getStatePath(state map[string]interface{}, path string) (interface{}, bool) {
	segments := strings.Split(path, ".")
	node := state
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]interface{})
		if !ok {
			return nil, false
		}
		node = child
	}
	v, ok := node[segments[len(segments)-1]]
	return v, ok
}
