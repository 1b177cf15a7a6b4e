package gradient

import "github.com/andyrewlee/termgradient/internal/logging"

// GradientBuilder stages gradient parameters through chained calls. A builder
// is single-use: the first Build consumes it, whatever the outcome.
type GradientBuilder struct {
	bold     bool
	italic   bool
	start    Colour
	end      Colour
	text     string
	consumed bool
}

// NewBuilder returns an empty builder. The zero value is equivalent.
func NewBuilder() *GradientBuilder {
	return &GradientBuilder{}
}

// Bold turns on bold text.
func (b *GradientBuilder) Bold() *GradientBuilder {
	b.bold = true
	return b
}

// Italic turns on italic text.
func (b *GradientBuilder) Italic() *GradientBuilder {
	b.italic = true
	return b
}

// Plain clears both bold and italic.
func (b *GradientBuilder) Plain() *GradientBuilder {
	b.bold = false
	b.italic = false
	return b
}

// Text sets the text to render.
func (b *GradientBuilder) Text(s string) *GradientBuilder {
	b.text = s
	return b
}

// StartColour sets the colour the last character approaches.
func (b *GradientBuilder) StartColour(c Colour) *GradientBuilder {
	b.start = c
	return b
}

// EndColour sets the colour of the first character.
func (b *GradientBuilder) EndColour(c Colour) *GradientBuilder {
	b.end = c
	return b
}

// Build validates the staged parameters and returns the finished Gradient.
// Both colours must have been set to something other than black.
func (b *GradientBuilder) Build() (Gradient, error) {
	if b.consumed {
		return Gradient{}, ErrBuilderConsumed
	}
	b.consumed = true

	if b.start.IsZero() || b.end.IsZero() {
		logging.Warn("gradient build rejected: start=%s end=%s", b.start, b.end)
		return Gradient{}, ErrUnconfiguredGradient
	}

	g := Gradient{
		start:   b.start,
		end:     b.end,
		text:    b.text,
		options: StyleFor(b.bold, b.italic),
	}
	b.text = ""

	logging.Debug("gradient built: %s -> %s, %s, %d bytes", g.start, g.end, g.options, len(g.text))
	return g, nil
}
