// Package modules assembles prompt modules: it maps repository state to the
// per-category mini-templates from the configuration and evaluates them into
// ordered styled segments.
package modules

import "github.com/xvierd/glint/internal/domain"

// Module is one rendered prompt module. A module that would display nothing
// is represented as a nil *Module, not an empty one, so callers can tell a
// clean repository apart from a failed probe.
type Module struct {
	Name     string
	Segments []domain.Segment
}

// Text returns the module's plain concatenated text, without styles.
func (m *Module) Text() string {
	return domain.PlainText(m.Segments)
}
