// Package gradient renders text as a two-stop colour gradient for terminals.
//
// A GradientBuilder collects the endpoints, text and style, and Build turns
// it into an immutable Gradient. Each character gets its own colour, linearly
// interpolated in RGB from the end colour at the first character towards the
// start colour, and is emitted through a render.Renderer:
//
//	g, err := gradient.NewBuilder().
//		Bold().
//		StartColour(gradient.NewColour(0x24, 0xF2, 0x6F)).
//		EndColour(gradient.NewColour(0x84, 0x24, 0xF2)).
//		Text("Hello, World!").
//		Build()
//	if err != nil {
//		return err
//	}
//	fmt.Println(g)
//
// Diagnostics are off by default; SetLogOutput or EnableFileLogging turn them on.
package gradient
