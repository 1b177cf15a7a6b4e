package gradient

import "image/color"

type renderCall struct {
	text   string
	fg     color.Color
	bold   bool
	italic bool
}

// recorder is a render.Renderer that remembers its calls.
type recorder struct {
	calls []renderCall
}

func (r *recorder) Render(text string, fg color.Color, bold, italic bool) string {
	r.calls = append(r.calls, renderCall{text: text, fg: fg, bold: bold, italic: italic})
	return text
}
