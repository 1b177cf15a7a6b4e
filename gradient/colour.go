package gradient

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Colour is an 8-bit-per-channel RGB value. The zero value doubles as the
// "unset" marker used by GradientBuilder.
type Colour struct {
	r, g, b uint8
}

// NewColour creates a Colour from its channels.
func NewColour(r, g, b uint8) Colour {
	return Colour{r: r, g: g, b: b}
}

// ColourFromHex decodes a packed RGB integer such as 0x24F26F.
//
// Values below 0xFFF are read as three 4-bit nibbles (0xF0C gives 15, 0, 12)
// and are not widened to full bytes, so 0xFFF and 0xFFE decode very
// differently. Use ParseColour for CSS-style shorthand.
func ColourFromHex(v uint32) (Colour, error) {
	if v > 0xFFFFFF {
		return Colour{}, fmt.Errorf("%w: %#x exceeds 0xFFFFFF", ErrInvalidHex, v)
	}

	if v < 0xFFF {
		return Colour{
			r: uint8((v & 0xF00) >> 8),
			g: uint8((v & 0x0F0) >> 4),
			b: uint8(v & 0x00F),
		}, nil
	}
	return Colour{
		r: uint8((v & 0xFF0000) >> 16),
		g: uint8((v & 0x00FF00) >> 8),
		b: uint8(v & 0x0000FF),
	}, nil
}

// ParseColour parses "#rrggbb" or the CSS shorthand "#rgb". Unlike
// ColourFromHex, shorthand nibbles are widened ("#f0c" is "#ff00cc").
func ParseColour(s string) (Colour, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return Colour{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	r, g, b := c.RGB255()
	return Colour{r: r, g: g, b: b}, nil
}

// R returns the red channel.
func (c Colour) R() uint8 { return c.r }

// G returns the green channel.
func (c Colour) G() uint8 { return c.g }

// B returns the blue channel.
func (c Colour) B() uint8 { return c.b }

// IsZero reports whether c is black, the builder's unset marker.
func (c Colour) IsZero() bool {
	return c == Colour{}
}

// Add sums two colours channel by channel, saturating at 255.
func (c Colour) Add(o Colour) Colour {
	return Colour{
		r: addChannel(c.r, o.r),
		g: addChannel(c.g, o.g),
		b: addChannel(c.b, o.b),
	}
}

// Scale multiplies every channel by s. Results are clamped to [0, 255]
// before truncation, so s slightly above 1 cannot overflow.
func (c Colour) Scale(s float32) Colour {
	return Colour{
		r: scaleChannel(c.r, s),
		g: scaleChannel(c.g, s),
		b: scaleChannel(c.b, s),
	}
}

func addChannel(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 0xFF {
		return 0xFF
	}
	return uint8(sum)
}

func scaleChannel(v uint8, s float32) uint8 {
	f := float32(v) * s
	// Also catches NaN.
	if !(f > 0) {
		return 0
	}
	if f >= 0xFF {
		return 0xFF
	}
	return uint8(f)
}

// RGBA implements image/color.Color.
func (c Colour) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r)
	r |= r << 8
	g = uint32(c.g)
	g |= g << 8
	b = uint32(c.b)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// Hex formats the colour as "#rrggbb".
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

func (c Colour) String() string {
	return c.Hex()
}
