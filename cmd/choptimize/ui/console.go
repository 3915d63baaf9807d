package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const fallbackTermWidth = 80

// Console bundles the output handles, theme, and display width for one run.
// It is created once at process start and threaded through; nothing else
// writes to the streams directly.
type Console struct {
	out      io.Writer
	errOut   io.Writer
	styles   Styles
	termWide int
}

// NewConsole builds a Console on stdout/stderr, probing the terminal width.
func NewConsole() *Console {
	width := fallbackTermWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	return NewConsoleFor(os.Stdout, os.Stderr, width)
}

// NewConsoleFor builds a Console on explicit writers with a fixed terminal
// width. Used by tests.
func NewConsoleFor(out, errOut io.Writer, termWidth int) *Console {
	if termWidth <= 0 {
		termWidth = fallbackTermWidth
	}
	return &Console{
		out:      out,
		errOut:   errOut,
		styles:   DefaultStyles(),
		termWide: termWidth,
	}
}

// Width returns the content width for bordered blocks: wide terminals cap at
// 100 columns with a margin, medium ones keep a 10-column margin, narrow
// ones a 4-column margin.
func (c *Console) Width() int {
	switch {
	case c.termWide >= 120:
		w := c.termWide - 20
		if w > 100 {
			w = 100
		}
		return w
	case c.termWide >= 80:
		return c.termWide - 10
	default:
		return c.termWide - 4
	}
}

func (c *Console) println(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
}

// Status prints a transient progress note to the error stream so stdout
// stays clean for the report.
func (c *Console) Status(msg string) {
	fmt.Fprintln(c.errOut, c.styles.Status.Render(msg))
}

// Error is the single error-reporting primitive: a bold "Error:" prefix,
// the message, and an optional supplementary second line. Both parts may
// carry inline markup and are rendered defensively.
func (c *Console) Error(msg, sup string) {
	fmt.Fprintf(c.errOut, "%s %s\n", c.styles.Error.Render("Error:"), SafeRenderMarkup(msg))
	if sup != "" {
		fmt.Fprintf(c.errOut, " %s %s\n", c.styles.Error.Render("↳"), SafeRenderMarkup(sup))
	}
}

// Interrupted reports a user interrupt. Distinct prefix, not an error.
func (c *Console) Interrupted() {
	fmt.Fprintf(c.errOut, "%s interrupted\n", c.styles.Error.Render("!"))
}
