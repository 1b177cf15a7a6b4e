package gradient

// StyleOptions is the text decoration applied to every character of a
// Gradient.
type StyleOptions uint8

const (
	StyleDefault StyleOptions = iota
	StyleBold
	StyleItalic
	StyleBoldItalic
)

// StyleFor maps independent bold/italic flags onto a StyleOptions value.
func StyleFor(bold, italic bool) StyleOptions {
	switch {
	case bold && italic:
		return StyleBoldItalic
	case bold:
		return StyleBold
	case italic:
		return StyleItalic
	default:
		return StyleDefault
	}
}

// decoration splits the style back into the flags a renderer expects.
func (s StyleOptions) decoration() (bold, italic bool) {
	switch s {
	case StyleBold:
		return true, false
	case StyleItalic:
		return false, true
	case StyleBoldItalic:
		return true, true
	case StyleDefault:
		return false, false
	default:
		return false, false
	}
}

// Bold reports whether the style includes bold.
func (s StyleOptions) Bold() bool {
	bold, _ := s.decoration()
	return bold
}

// Italic reports whether the style includes italic.
func (s StyleOptions) Italic() bool {
	_, italic := s.decoration()
	return italic
}

func (s StyleOptions) String() string {
	switch s {
	case StyleDefault:
		return "default"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleBoldItalic:
		return "bold-italic"
	default:
		return "unknown"
	}
}
