// Package formatter parses user-configurable format strings into an AST and
// evaluates them against caller-supplied variable and style resolvers,
// producing ordered styled segments.
package formatter

import (
	"github.com/xvierd/glint/internal/domain"
	"github.com/xvierd/glint/internal/ports"
)

// maxMetaDepth caps nested meta-variable expansion. A chain that refers to
// itself, directly or transitively, hits the cap instead of looping.
const maxMetaDepth = 16

// MetaFunc maps a meta-variable name to its replacement format string.
// Names it does not recognize fall through to the variable resolver.
type MetaFunc func(name string) (string, bool)

// Formatter is a parsed format string ready for evaluation. The parsed tree
// is immutable and safe for concurrent Render calls.
type Formatter struct {
	format string
	nodes  []node
	meta   MetaFunc
}

// New parses a format string. Syntax errors are returned as *FormatError;
// no partial tree is ever produced.
func New(format string) (*Formatter, error) {
	nodes, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	return &Formatter{format: format, nodes: nodes}, nil
}

// WithMeta registers the meta-variable expansion table and returns the
// formatter for chaining.
func (f *Formatter) WithMeta(meta MetaFunc) *Formatter {
	f.meta = meta
	return f
}

// Render evaluates the parsed format against the resolver. A variable that
// resolves to zero segments is absent: it emits nothing, and any group it
// shares with literal separators is dropped with it. When every variable in
// the whole format is absent the result is an empty segment list, which is
// how a caller knows to display nothing at all.
func (f *Formatter) Render(res ports.Resolver) ([]domain.Segment, error) {
	out, err := f.eval(f.nodes, domain.StyleNone, res, 0)
	if err != nil {
		return nil, err
	}
	if out.sawVariable && !out.emitted {
		return nil, nil
	}
	return out.segments, nil
}

// evalResult carries, besides the produced segments, whether the evaluated
// node list referenced any variable and whether any of them emitted output.
// Groups use the pair to decide if their literal decoration should survive.
type evalResult struct {
	segments    []domain.Segment
	sawVariable bool
	emitted     bool
}

func (f *Formatter) eval(nodes []node, style domain.Style, res ports.Resolver, depth int) (evalResult, error) {
	var out evalResult

	for _, n := range nodes {
		switch n.kind {
		case nodeText:
			out.segments = append(out.segments, domain.Segment{Text: n.text, Style: style})

		case nodeVariable:
			if f.meta != nil {
				if replacement, ok := f.meta(n.name); ok {
					if depth >= maxMetaDepth {
						return evalResult{}, &FormatError{Format: f.format, Err: ErrRecursionLimit}
					}
					children, err := parseFormat(replacement)
					if err != nil {
						return evalResult{}, err
					}
					inner, err := f.eval(children, style, res, depth+1)
					if err != nil {
						return evalResult{}, err
					}
					out.sawVariable = true
					if inner.sawVariable && !inner.emitted {
						break
					}
					if len(inner.segments) > 0 {
						out.emitted = true
					}
					out.segments = append(out.segments, inner.segments...)
					break
				}
			}
			segs, ok := res.ResolveVariable(n.name)
			if !ok {
				return evalResult{}, &UnknownVariableError{Name: n.name}
			}
			out.sawVariable = true
			if len(segs) > 0 {
				out.emitted = true
			}
			for _, s := range segs {
				if s.Style == domain.StyleNone {
					s.Style = style
				}
				out.segments = append(out.segments, s)
			}

		case nodeGroup:
			groupStyle, ok := res.ResolveStyle(n.styleKey)
			if !ok {
				// Style resolution failure is non-fatal; the body renders
				// unstyled.
				groupStyle = domain.StyleNone
			}
			inner, err := f.eval(n.children, groupStyle, res, depth)
			if err != nil {
				return evalResult{}, err
			}
			if inner.sawVariable {
				out.sawVariable = true
				if !inner.emitted {
					break
				}
				out.emitted = true
			}
			out.segments = append(out.segments, inner.segments...)
		}
	}

	return out, nil
}
