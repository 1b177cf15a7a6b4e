package gradient

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/termgradient/render"
)

// Gradient is an immutable request to render text with a linear colour
// gradient. It is safe to render from several goroutines at once.
type Gradient struct {
	start   Colour
	end     Colour
	text    string
	options StyleOptions
}

// New builds a Gradient with the default style and no validation; black
// endpoints are accepted.
func New(start, end Colour, text string) Gradient {
	return Gradient{
		start:   start,
		end:     end,
		text:    text,
		options: StyleDefault,
	}
}

// Start returns the start colour.
func (g Gradient) Start() Colour { return g.start }

// End returns the end colour.
func (g Gradient) End() Colour { return g.end }

// Text returns the text being rendered.
func (g Gradient) Text() string { return g.text }

// Options returns the text decoration.
func (g Gradient) Options() StyleOptions { return g.options }

// Colours returns one colour per rune of the text.
//
// Character i of n gets start*(i/n) + end*(1-i/n): the first character is
// exactly End and the last one approaches Start without reaching it.
func (g Gradient) Colours() []Colour {
	n := utf8.RuneCountInString(g.text)
	if n == 0 {
		return nil
	}

	colours := make([]Colour, 0, n)
	length := float32(n)
	for i := 0; i < n; i++ {
		alpha := float32(i) / length
		beta := 1 - alpha
		colours = append(colours, g.start.Scale(alpha).Add(g.end.Scale(beta)))
	}
	return colours
}

// Segments renders each rune separately, in text order.
func (g Gradient) Segments(r render.Renderer) []string {
	if r == nil {
		r = render.Default
	}

	colours := g.Colours()
	if len(colours) == 0 {
		return nil
	}

	bold, italic := g.options.decoration()
	segments := make([]string, 0, len(colours))
	i := 0
	for _, ch := range g.text {
		segments = append(segments, r.Render(string(ch), colours[i], bold, italic))
		i++
	}
	return segments
}

// Render concatenates the styled segments. A nil renderer uses render.Default.
func (g Gradient) Render(r render.Renderer) string {
	return strings.Join(g.Segments(r), "")
}

// String renders with render.Default.
func (g Gradient) String() string {
	return g.Render(render.Default)
}

// Width returns the number of terminal cells the rendered text occupies.
func (g Gradient) Width() int {
	return ansi.StringWidth(g.String())
}
