package formatter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbalancedGroup reports a `[` without its matching `]`, or a stray
	// `]` outside any group.
	ErrUnbalancedGroup = errors.New("unbalanced style group")

	// ErrMissingStyleKey reports a closed group body with no `(style)` key
	// after it.
	ErrMissingStyleKey = errors.New("style group is missing its (style) key")

	// ErrRecursionLimit reports a meta-variable chain that expands past the
	// allowed depth, which happens when an expansion refers to itself.
	ErrRecursionLimit = errors.New("meta-variable recursion limit exceeded")
)

// FormatError is a syntax or expansion error in a format string. It names
// the offending format string so the caller can report which configuration
// value to fix.
type FormatError struct {
	Format string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format string %q: %v", e.Format, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// UnknownVariableError reports a variable reference the resolver did not
// recognize. It is an evaluation-time error, not a syntax error.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable %q", e.Name)
}
