package styles

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorScheme defines the color palette used for console output
type ColorScheme struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color
}

// DefaultColors returns the default color scheme
func DefaultColors() ColorScheme {
	return ColorScheme{
		Primary: lipgloss.Color("#7D56F4"),
		Success: lipgloss.Color("#04B575"),
		Error:   lipgloss.Color("#FF5F87"),
		Muted:   lipgloss.Color("#999999"),
	}
}

// Styles contains the lipgloss styles for calculator output
type Styles struct {
	Colors ColorScheme

	Prompt lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
	Title  lipgloss.Style

	renderer *lipgloss.Renderer
}

// New creates styles bound to w. With color disabled the renderer uses the
// ASCII profile and output is the unmodified text.
func New(w io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return newStyles(r, DefaultColors())
}

// Plain returns styles that never emit escape sequences
func Plain() *Styles {
	return New(io.Discard, false)
}

func newStyles(r *lipgloss.Renderer, colors ColorScheme) *Styles {
	return &Styles{
		Colors:   colors,
		Prompt:   r.NewStyle().Foreground(colors.Primary),
		Result:   r.NewStyle().Bold(true).Foreground(colors.Success),
		Error:    r.NewStyle().Foreground(colors.Error),
		Muted:    r.NewStyle().Foreground(colors.Muted),
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(colors.Primary).Padding(0, 1),
		renderer: r,
	}
}

// Colorless reports whether rendering is a no-op
func (s *Styles) Colorless() bool {
	return s.renderer.ColorProfile() == termenv.Ascii
}

// Paint renders text line by line so multi-line messages keep their exact
// spacing instead of being padded to a common width.
func Paint(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
