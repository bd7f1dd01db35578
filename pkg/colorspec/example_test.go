package colorspec_test

import (
	"fmt"

	"github.com/matzehuels/parallelowow/pkg/colorspec"
)

func ExampleHexToRGB() {
	short, _ := colorspec.HexToRGB("#abc")
	long, _ := colorspec.HexToRGB("#aabbcc")
	fmt.Println(short)
	fmt.Println(long)
	// Output:
	// rgb(170,187,204)
	// rgb(170,187,204)
}

func ExampleAdjustBrightness() {
	brighter, _ := colorspec.AdjustBrightness("rgb(250,10,0)", 10)
	darker, _ := colorspec.AdjustBrightness("rgb(5,0,250)", -10)
	translucent, _ := colorspec.AdjustBrightness("rgba(10,20,30,0.5)", 5)
	fmt.Println(brighter)
	fmt.Println(darker)
	fmt.Println(translucent)
	// Output:
	// rgb(255,20,10)
	// rgb(0,0,240)
	// rgba(15,25,35,0.5)
}

func ExampleColor_Adjust() {
	base := colorspec.MustParse("#cc99ff")
	fmt.Println(base, base.Adjust(-10), base.Adjust(-30))
	// Output:
	// rgb(204,153,255) rgb(194,143,245) rgb(174,123,225)
}
