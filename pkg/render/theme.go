package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the styles used for status markers and report labels.
type Theme struct {
	Name    string
	Pass    lipgloss.Style
	Fail    lipgloss.Style
	Skip    lipgloss.Style
	Done    lipgloss.Style
	Message lipgloss.Style
	Header  lipgloss.Style
	Muted   lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. Color is emitted only when
// color is true, whatever w turns out to be.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// DefaultTheme returns the classic colored-block markers: white on green for
// PASS, black on red for FAIL.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Name:    "default",
		Pass:    r.NewStyle().Foreground(lipgloss.Color("7")).Background(lipgloss.Color("2")),
		Fail:    r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("1")),
		Skip:    r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")),
		Done:    r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")),
		Message: r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("1")),
		Header:  r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("242")), // gray
	}
}

// MonoTheme returns a theme without any styling.
func MonoTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Name:    "mono",
		Pass:    r.NewStyle(),
		Fail:    r.NewStyle(),
		Skip:    r.NewStyle(),
		Done:    r.NewStyle(),
		Message: r.NewStyle(),
		Header:  r.NewStyle(),
		Muted:   r.NewStyle(),
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string, r *lipgloss.Renderer) Theme {
	switch name {
	case "mono":
		return MonoTheme(r)
	default:
		return DefaultTheme(r)
	}
}
