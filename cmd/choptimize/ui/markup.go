package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Inline markup for model-generated text: [bold]...[/bold] spans with
// nesting, [/] closes the innermost span, [[ is a literal bracket.
// RenderMarkup is strict; SafeRenderMarkup never fails.

var markupColors = map[string]lipgloss.Color{
	"black":          lipgloss.Color("0"),
	"red":            lipgloss.Color("1"),
	"green":          lipgloss.Color("2"),
	"yellow":         lipgloss.Color("3"),
	"blue":           lipgloss.Color("4"),
	"magenta":        lipgloss.Color("5"),
	"cyan":           lipgloss.Color("6"),
	"white":          lipgloss.Color("7"),
	"bright_black":   lipgloss.Color("8"),
	"bright_red":     lipgloss.Color("9"),
	"bright_green":   lipgloss.Color("10"),
	"bright_yellow":  lipgloss.Color("11"),
	"bright_blue":    lipgloss.Color("12"),
	"bright_magenta": lipgloss.Color("13"),
	"bright_cyan":    lipgloss.Color("14"),
	"bright_white":   lipgloss.Color("15"),
}

func applyStyleWord(st lipgloss.Style, word string) (lipgloss.Style, bool) {
	switch word {
	case "bold":
		return st.Bold(true), true
	case "italic":
		return st.Italic(true), true
	case "underline":
		return st.Underline(true), true
	case "dim":
		return st.Faint(true), true
	case "strike":
		return st.Strikethrough(true), true
	}
	if c, ok := markupColors[word]; ok {
		return st.Foreground(c), true
	}
	return st, false
}

type openTag struct {
	name  string
	style lipgloss.Style
}

// Escape makes text safe for embedding in a markup template by doubling
// opening brackets.
func Escape(text string) string {
	return strings.ReplaceAll(text, "[", "[[")
}

// RenderMarkup interprets inline markup and returns the styled text. It
// fails on an unterminated tag, a close with no matching open, a mismatched
// close, or an unknown style word.
func RenderMarkup(input string) (string, error) {
	var out strings.Builder
	var buf strings.Builder
	var stack []openTag

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		text := buf.String()
		buf.Reset()
		if len(stack) == 0 {
			out.WriteString(text)
			return
		}
		out.WriteString(stack[len(stack)-1].style.Render(text))
	}

	for i := 0; i < len(input); {
		ch := input[i]
		if ch != '[' {
			buf.WriteByte(ch)
			i++
			continue
		}
		if strings.HasPrefix(input[i:], "[[") {
			buf.WriteByte('[')
			i += 2
			continue
		}

		end := strings.IndexByte(input[i:], ']')
		if end < 0 {
			return "", fmt.Errorf("unterminated markup tag at offset %d", i)
		}
		tag := input[i+1 : i+end]
		i += end + 1

		if strings.HasPrefix(tag, "/") {
			flush()
			if len(stack) == 0 {
				return "", fmt.Errorf("closing tag [%s] with no open tag", tag)
			}
			name := strings.TrimSpace(tag[1:])
			top := stack[len(stack)-1]
			if name != "" && name != top.name {
				return "", fmt.Errorf("closing tag [%s] does not match open tag [%s]", tag, top.name)
			}
			stack = stack[:len(stack)-1]
			continue
		}

		name := strings.TrimSpace(tag)
		if name == "" {
			return "", fmt.Errorf("empty markup tag at offset %d", i-end-1)
		}
		style := lipgloss.NewStyle()
		if len(stack) > 0 {
			style = stack[len(stack)-1].style
		}
		for _, word := range strings.Fields(name) {
			var ok bool
			style, ok = applyStyleWord(style, word)
			if !ok {
				return "", fmt.Errorf("unknown style %q in tag [%s]", word, name)
			}
		}
		flush()
		stack = append(stack, openTag{name: name, style: style})
	}

	if len(stack) > 0 {
		return "", fmt.Errorf("unterminated markup: [%s] never closed", stack[len(stack)-1].name)
	}
	flush()
	return out.String(), nil
}

// SafeRenderMarkup interprets markup, degrading to the literal unstyled text
// when the markup is malformed. It never fails and never drops content.
func SafeRenderMarkup(input string) string {
	rendered, err := RenderMarkup(input)
	if err != nil {
		return input
	}
	return rendered
}
