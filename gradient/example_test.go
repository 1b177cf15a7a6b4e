package gradient_test

import (
	"fmt"

	"github.com/andyrewlee/termgradient/gradient"
	"github.com/andyrewlee/termgradient/render"
)

func ExampleGradientBuilder() {
	start, _ := gradient.ColourFromHex(0x24F26F)
	end, _ := gradient.ColourFromHex(0x8424F2)

	g, err := gradient.NewBuilder().
		Text("Hi!").
		StartColour(start).
		EndColour(end).
		Bold().
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(g.Options())
	for _, c := range g.Colours() {
		fmt.Println(c)
	}
	fmt.Println(g.Render(render.Plain{}))
	// Output:
	// bold
	// #8424f2
	// #6367c6
	// #43ac9a
	// Hi!
}

func ExampleGradientBuilder_Build_unconfigured() {
	_, err := gradient.NewBuilder().Text("nothing to see").Build()
	fmt.Println(err)
	// Output: gradient colours not configured
}
