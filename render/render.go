// Package render turns a run of text plus a foreground colour and decoration
// flags into a terminal-displayable fragment.
package render

import (
	"image/color"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Renderer styles a single fragment. Implementations must emit whatever reset
// is needed so that fragments can be concatenated without bleeding.
type Renderer interface {
	Render(text string, fg color.Color, bold, italic bool) string
}

// Default is used when no renderer is supplied.
var Default Renderer = TrueColor{}

// resetStyle is the explicit "ESC[0m" form rather than ansi.ResetStyle's
// "ESC[m"; existing output baselines depend on it.
var resetStyle = ansi.NewStyle(ansi.AttrReset).String()

// TrueColor emits 24-bit SGR sequences regardless of what the terminal
// advertises.
type TrueColor struct{}

// Render implements Renderer.
func (TrueColor) Render(text string, fg color.Color, bold, italic bool) string {
	style := ansi.Style{}
	if bold {
		style = style.Bold()
	}
	if italic {
		style = style.Italic(true)
	}
	style = style.ForegroundColor(fg)
	return style.String() + text + resetStyle
}

// Plain drops all styling.
type Plain struct{}

// Render implements Renderer.
func (Plain) Render(text string, _ color.Color, _, _ bool) string {
	return text
}

// Lipgloss renders through a lipgloss renderer, degrading colours to whatever
// the detected (or forced) termenv profile supports. Tabs are expanded to
// spaces, as lipgloss does for every style.
type Lipgloss struct {
	r *lipgloss.Renderer
}

// NewLipgloss detects the colour profile of w.
func NewLipgloss(w io.Writer) *Lipgloss {
	return &Lipgloss{r: lipgloss.NewRenderer(w)}
}

// NewLipglossWithProfile pins the colour profile, which is useful when output
// is buffered or piped.
func NewLipglossWithProfile(p termenv.Profile) *Lipgloss {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(p)
	return &Lipgloss{r: r}
}

// Profile reports the colour profile in effect.
func (l *Lipgloss) Profile() termenv.Profile {
	return l.r.ColorProfile()
}

// Render implements Renderer.
func (l *Lipgloss) Render(text string, fg color.Color, bold, italic bool) string {
	style := l.r.NewStyle().Bold(bold).Italic(italic)
	if fg != nil {
		if c, ok := colorful.MakeColor(fg); ok {
			style = style.Foreground(lipgloss.Color(c.Hex()))
		}
	}
	return style.Render(text)
}
