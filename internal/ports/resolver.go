package ports

import "github.com/xvierd/glint/internal/domain"

// Resolver supplies variable and style lookups to the template formatter.
// It is provided by the caller at each render; the formatter has no
// compile-time knowledge of which variables or styles it serves.
// This is a driven port (implemented by the prompt-module layer).
type Resolver interface {
	// ResolveVariable returns the segments a variable expands to. Returning
	// ok=false signals an unknown variable. Returning ok=true with zero
	// segments means the variable is absent for this render: it contributes
	// no output, and literal separators grouped with it are dropped too.
	ResolveVariable(name string) (segments []domain.Segment, ok bool)

	// ResolveStyle maps a style key to a style token. A miss is non-fatal;
	// the enclosing group then renders unstyled.
	ResolveStyle(key string) (domain.Style, bool)
}
