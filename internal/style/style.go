// Package style turns opaque style tokens into lipgloss styles and paints
// segments with them. The formatter core never sees any of this; tokens
// stay opaque until a command actually prints something.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/glint/internal/domain"
)

// namedColors maps the sixteen basic terminal color names to their ANSI
// indices. Hex values (#rrggbb) and raw 0-255 indices pass through as-is.
var namedColors = map[string]string{
	"black":         "0",
	"red":           "1",
	"green":         "2",
	"yellow":        "3",
	"blue":          "4",
	"purple":        "5",
	"magenta":       "5",
	"cyan":          "6",
	"white":         "7",
	"bright-black":  "8",
	"bright-red":    "9",
	"bright-green":  "10",
	"bright-yellow": "11",
	"bright-blue":   "12",
	"bright-purple": "13",
	"bright-cyan":   "14",
	"bright-white":  "15",
}

// Parse builds a lipgloss style from a whitespace-separated token such as
// "bold red" or "fg:#af00ff bg:blue underline". Unrecognized words are
// skipped; style problems must never break the prompt.
func Parse(token domain.Style) lipgloss.Style {
	s := lipgloss.NewStyle()

	for _, word := range strings.Fields(string(token)) {
		switch word {
		case "bold":
			s = s.Bold(true)
		case "italic":
			s = s.Italic(true)
		case "underline":
			s = s.Underline(true)
		case "dimmed", "faint":
			s = s.Faint(true)
		case "blink":
			s = s.Blink(true)
		case "strikethrough":
			s = s.Strikethrough(true)
		case "inverted", "reverse":
			s = s.Reverse(true)
		case "none":
			s = lipgloss.NewStyle()
		default:
			if value, ok := strings.CutPrefix(word, "bg:"); ok {
				if c, ok := color(value); ok {
					s = s.Background(c)
				}
				break
			}
			value := strings.TrimPrefix(word, "fg:")
			if c, ok := color(value); ok {
				s = s.Foreground(c)
			}
		}
	}

	return s
}

func color(value string) (lipgloss.Color, bool) {
	if ansi, ok := namedColors[value]; ok {
		return lipgloss.Color(ansi), true
	}
	if strings.HasPrefix(value, "#") && len(value) == 7 {
		return lipgloss.Color(value), true
	}
	if isDigits(value) {
		return lipgloss.Color(value), true
	}
	return "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Render paints segments into one string. With noColor set, styles are
// dropped and the plain text is returned unchanged.
func Render(segments []domain.Segment, noColor bool) string {
	if noColor {
		return domain.PlainText(segments)
	}

	var b strings.Builder
	for _, seg := range segments {
		if seg.Style == domain.StyleNone {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(Parse(seg.Style).Render(seg.Text))
	}
	return b.String()
}
