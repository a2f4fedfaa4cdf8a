package modules

import (
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/xvierd/glint/internal/formatter"
)

// withSuggestion decorates an unknown-variable error with the closest known
// variable name, since these errors come straight from user-edited format
// strings. Other errors pass through untouched.
func withSuggestion(err error, known []string) error {
	var unknown *formatter.UnknownVariableError
	if !errors.As(err, &unknown) {
		return err
	}
	matches := fuzzy.Find(unknown.Name, known)
	if len(matches) == 0 {
		return err
	}
	return fmt.Errorf("%w (did you mean %q?)", err, matches[0].Str)
}
