package gradient

import (
	"errors"
	"math"
	"testing"
)

var sampleColours = []Colour{
	NewColour(0, 0, 0),
	NewColour(255, 255, 255),
	NewColour(0x24, 0xF2, 0x6F),
	NewColour(0x84, 0x24, 0xF2),
	NewColour(1, 128, 254),
	NewColour(33, 37, 41),
}

func TestColourScaleIdentityAndZero(t *testing.T) {
	for _, c := range sampleColours {
		if got := c.Scale(1); got != c {
			t.Errorf("%s.Scale(1) = %s, want unchanged", c, got)
		}
		if got := c.Scale(0); !got.IsZero() {
			t.Errorf("%s.Scale(0) = %s, want #000000", c, got)
		}
	}
}

func TestColourScaleClamps(t *testing.T) {
	white := NewColour(255, 255, 255)

	tests := []struct {
		name  string
		in    Colour
		scale float32
		want  Colour
	}{
		{"slightly above one", white, 1.0000001, white},
		{"well above one", NewColour(200, 10, 0), 2, NewColour(255, 20, 0)},
		{"negative", white, -0.5, Colour{}},
		{"nan", white, float32(math.NaN()), Colour{}},
		{"half truncates", NewColour(255, 3, 1), 0.5, NewColour(127, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Scale(tt.scale); got != tt.want {
				t.Fatalf("%s.Scale(%v) = %s, want %s", tt.in, tt.scale, got, tt.want)
			}
		})
	}
}

func TestColourAddSaturates(t *testing.T) {
	tests := []struct {
		a, b, want Colour
	}{
		{NewColour(1, 2, 3), NewColour(10, 20, 30), NewColour(11, 22, 33)},
		{NewColour(200, 255, 128), NewColour(100, 1, 127), NewColour(255, 255, 255)},
		{NewColour(255, 0, 255), Colour{}, NewColour(255, 0, 255)},
	}

	for _, tt := range tests {
		if got := tt.a.Add(tt.b); got != tt.want {
			t.Errorf("%s.Add(%s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestColourFromHex(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  Colour
	}{
		{"long form", 0x24F26F, NewColour(0x24, 0xF2, 0x6F)},
		{"max", 0xFFFFFF, NewColour(255, 255, 255)},
		{"zero", 0, Colour{}},
		{"short form keeps nibbles", 0xF0C, NewColour(0x0F, 0x00, 0x0C)},
		{"just below short boundary", 0xFFE, NewColour(0x0F, 0x0F, 0x0E)},
		{"short boundary uses bytes", 0xFFF, NewColour(0x00, 0x0F, 0xFF)},
		{"above short boundary", 0x1000, NewColour(0x00, 0x10, 0x00)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColourFromHex(tt.value)
			if err != nil {
				t.Fatalf("ColourFromHex(%#x) error = %v", tt.value, err)
			}
			if got != tt.want {
				t.Fatalf("ColourFromHex(%#x) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestColourFromHexRange(t *testing.T) {
	for v := uint32(0); v <= 0xFFFFFF; v += 0x1011 {
		if _, err := ColourFromHex(v); err != nil {
			t.Fatalf("ColourFromHex(%#x) unexpected error: %v", v, err)
		}
	}

	for _, v := range []uint32{0x1000000, 0x1234567, math.MaxUint32} {
		_, err := ColourFromHex(v)
		if !errors.Is(err, ErrInvalidHex) {
			t.Fatalf("ColourFromHex(%#x) error = %v, want ErrInvalidHex", v, err)
		}
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Colour
		wantErr bool
	}{
		{"long lower", "#24f26f", NewColour(0x24, 0xF2, 0x6F), false},
		{"long upper", "#8424F2", NewColour(0x84, 0x24, 0xF2), false},
		{"short widened", "#f0c", NewColour(0xFF, 0x00, 0xCC), false},
		{"exact channels", "#212529", NewColour(33, 37, 41), false},
		{"trimmed", "  #ffffff ", NewColour(255, 255, 255), false},
		{"missing hash", "24f26f", Colour{}, true},
		{"wrong length", "#24f2", Colour{}, true},
		{"not hex", "#gggggg", Colour{}, true},
		{"empty", "", Colour{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColour(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHex) {
					t.Fatalf("ParseColour(%q) error = %v, want ErrInvalidHex", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColour(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseColour(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestColourAccessorsAndFormatting(t *testing.T) {
	c := NewColour(0x84, 0x24, 0xF2)
	if c.R() != 0x84 || c.G() != 0x24 || c.B() != 0xF2 {
		t.Fatalf("accessors = (%d, %d, %d)", c.R(), c.G(), c.B())
	}
	if got := c.Hex(); got != "#8424f2" {
		t.Fatalf("Hex() = %q", got)
	}
	if got := c.String(); got != c.Hex() {
		t.Fatalf("String() = %q, want Hex()", got)
	}

	r, g, b, a := c.RGBA()
	if r != 0x8484 || g != 0x2424 || b != 0xF2F2 || a != 0xFFFF {
		t.Fatalf("RGBA() = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}
}

func TestColourIsZero(t *testing.T) {
	if !(Colour{}).IsZero() {
		t.Fatal("zero value should report IsZero")
	}
	if NewColour(0, 0, 1).IsZero() {
		t.Fatal("non-black colour should not report IsZero")
	}
}
