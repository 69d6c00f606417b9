package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode controls styling of the text report.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode name.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("unknown color mode %q: must be auto, always or never", s)
}

// Theme styles headings and values of the text report. A nil or disabled
// Theme leaves text unchanged.
type Theme struct {
	enabled bool
	head    lipgloss.Style
	val     lipgloss.Style
}

// NewTheme returns the theme for writing to w. In auto mode styling is on
// only when w is a terminal.
func NewTheme(w io.Writer, mode ColorMode) *Theme {
	var r *lipgloss.Renderer
	switch mode {
	case ColorNever:
		return &Theme{}
	case ColorAlways:
		r = lipgloss.NewRenderer(w, termenv.WithProfile(termenv.ANSI256))
		r.SetColorProfile(termenv.ANSI256)
	default:
		f, ok := w.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return &Theme{}
		}
		r = lipgloss.NewRenderer(w)
	}
	return &Theme{
		enabled: true,
		head:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		val:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
}

// Enabled reports whether the theme emits escape sequences.
func (t *Theme) Enabled() bool { return t != nil && t.enabled }

func (t *Theme) heading(s string) string {
	if !t.Enabled() {
		return s
	}
	return t.head.Render(s)
}

func (t *Theme) value(s string) string {
	if !t.Enabled() {
		return s
	}
	return t.val.Render(s)
}
