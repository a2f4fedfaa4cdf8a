package formatter

import "strings"

// nodeKind discriminates the format AST variants.
type nodeKind int

const (
	nodeText nodeKind = iota
	nodeVariable
	nodeGroup
)

// node is one element of a parsed format string. A parsed format is a
// finite tree: groups hold their body as children, everything else is a
// leaf.
type node struct {
	kind     nodeKind
	text     string // nodeText
	name     string // nodeVariable
	styleKey string // nodeGroup
	children []node // nodeGroup
}

// parseFormat parses a format string into a node list.
//
// Syntax: `$name` is a variable reference, `[body](key)` is a style-scoped
// group, and `\$ \[ \] \( \) \\` are literal escapes. A `$` not followed by
// an identifier, and parentheses outside a group suffix, are plain text.
func parseFormat(format string) ([]node, error) {
	p := &parser{format: format, runes: []rune(format)}
	nodes, err := p.parseNodes(false)
	if err != nil {
		return nil, &FormatError{Format: format, Err: err}
	}
	return nodes, nil
}

type parser struct {
	format string
	runes  []rune
	pos    int
}

func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// parseNodes consumes nodes until end of input, or until the `]` closing
// the current group when inGroup is set (the `]` itself is consumed, the
// `(key)` suffix is left for the caller).
func (p *parser) parseNodes(inGroup bool) ([]node, error) {
	var nodes []node
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, node{kind: nodeText, text: text.String()})
			text.Reset()
		}
	}

	for p.pos < len(p.runes) {
		switch r := p.runes[p.pos]; r {
		case '\\':
			p.pos++
			if p.pos >= len(p.runes) {
				text.WriteRune('\\')
				break
			}
			next := p.runes[p.pos]
			switch next {
			case '$', '[', ']', '(', ')', '\\':
				text.WriteRune(next)
			default:
				text.WriteRune('\\')
				text.WriteRune(next)
			}
			p.pos++
		case '$':
			p.pos++
			start := p.pos
			for p.pos < len(p.runes) && isIdentRune(p.runes[p.pos]) {
				p.pos++
			}
			if p.pos == start {
				text.WriteRune('$')
				break
			}
			flush()
			nodes = append(nodes, node{kind: nodeVariable, name: string(p.runes[start:p.pos])})
		case '[':
			p.pos++
			children, err := p.parseNodes(true)
			if err != nil {
				return nil, err
			}
			key, err := p.parseStyleKey()
			if err != nil {
				return nil, err
			}
			flush()
			nodes = append(nodes, node{kind: nodeGroup, styleKey: key, children: children})
		case ']':
			if !inGroup {
				return nil, ErrUnbalancedGroup
			}
			p.pos++
			flush()
			return nodes, nil
		default:
			text.WriteRune(r)
			p.pos++
		}
	}

	if inGroup {
		return nil, ErrUnbalancedGroup
	}
	flush()
	return nodes, nil
}

// parseStyleKey consumes the `(key)` suffix that must follow a group body.
func (p *parser) parseStyleKey() (string, error) {
	if p.pos >= len(p.runes) || p.runes[p.pos] != '(' {
		return "", ErrMissingStyleKey
	}
	p.pos++
	start := p.pos
	for p.pos < len(p.runes) && p.runes[p.pos] != ')' {
		p.pos++
	}
	if p.pos >= len(p.runes) {
		return "", ErrMissingStyleKey
	}
	key := string(p.runes[start:p.pos])
	p.pos++
	return key, nil
}
