// Package models contains shared domain and API types.
package models

// Graph is the compiled page graph stored with a study config.
// Compilation (YAML → canonical form) happens at upload time and is
// out of scope here; the runtime only walks the result.
type Graph struct {
	InitialPageID string          `json:"initialPageId"`
	Pages         map[string]Page `json:"pages"`
}

// Page is one node of the page graph: an ordered list of components,
// optionally flagged as an end page.
type Page struct {
	ID             string      `json:"id"`
	Components     []Component `json:"components"`
	End            bool        `json:"end,omitempty"`
	EndRedirectURL string      `json:"endRedirectUrl,omitempty"`
}

// Component is a renderer component instance on a page. Props are
// opaque to the runtime except for the chat component's agents list.
type Component struct {
	Type  string                 `json:"type"`
	ID    string                 `json:"id"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Branch is one arm of a branching action. The first branch whose When
// expression evaluates true is taken; a branch without When is the
// default arm.
type Branch struct {
	When   string `json:"when,omitempty"`
	Target string `json:"target"`
}

// EmptyPage is substituted when an advance targets a page id that is
// not present in the config. The renderer drives unknown targets for
// graceful degradation, so this is not an error.
func EmptyPage(id string) Page {
	return Page{ID: id, Components: []Component{}}
}

// FindPage returns the page for id, or an empty placeholder page when
// the id is unknown.
func (g Graph) FindPage(id string) Page {
	if p, ok := g.Pages[id]; ok {
		if p.ID == "" {
			p.ID = id
		}
		return p
	}
	return EmptyPage(id)
}
