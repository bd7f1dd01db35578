package colorspec

import (
	"errors"
	"image/color"
	"testing"
)

func TestIsValidHex(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"#abc", true},
		{"abc", true},
		{"#AABBCC", true},
		{"aAbBcC", true},
		{"#cc99ff", true},

		{"", false},
		{"#", false},
		{"#ab", false},
		{"#abcd", false},
		{"#abcde", false},
		{"#abcdefa", false},
		{"##abc", false},
		{"#ggg", false},
		{" #abc", false},
		{"rgb(1,2,3)", false},
	}

	for _, tt := range tests {
		if got := IsValidHex(tt.input); got != tt.want {
			t.Errorf("IsValidHex(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"short with hash", "#abc", "rgb(170,187,204)", false},
		{"long with hash", "#aabbcc", "rgb(170,187,204)", false},
		{"short without hash", "abc", "rgb(170,187,204)", false},
		{"uppercase", "#AABBCC", "rgb(170,187,204)", false},
		{"black", "#000", "rgb(0,0,0)", false},
		{"white", "#ffffff", "rgb(255,255,255)", false},
		{"default purple", "#cc99ff", "rgb(204,153,255)", false},

		{"empty", "", "", true},
		{"too short", "#ab", "", true},
		{"four digits", "#abcd", "", true},
		{"not hex", "#zzzzzz", "", true},
		{"trailing junk", "#12345g", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToRGB(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HexToRGB(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("HexToRGB(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if err != nil {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Errorf("error should be *ParseError, got %T", err)
				}
			}
		})
	}
}

func TestHexShortAndLongAgree(t *testing.T) {
	short, err := Parse("#abc")
	if err != nil {
		t.Fatal(err)
	}
	long, err := Parse("#aabbcc")
	if err != nil {
		t.Fatal(err)
	}
	if short != long {
		t.Errorf("Parse(#abc) = %+v, Parse(#aabbcc) = %+v", short, long)
	}
	if short.R != 170 || short.G != 187 || short.B != 204 {
		t.Errorf("channels = %d,%d,%d, want 170,187,204", short.R, short.G, short.B)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"rgb", "rgb(1,2,3)", Color{R: 1, G: 2, B: 3}, false},
		{"rgb spaced", "rgb( 10 , 20 , 30 )", Color{R: 10, G: 20, B: 30}, false},
		{"rgb uppercase", "RGB(10,20,30)", Color{R: 10, G: 20, B: 30}, false},
		{"rgb keeps out of range", "rgb(300,-5,20)", Color{R: 300, G: -5, B: 20}, false},
		{"rgb truncates fractions", "rgb(12.7,40%,3)", Color{R: 12, G: 40, B: 3}, false},
		{"rgba", "rgba(10,20,30,0.5)", Color{R: 10, G: 20, B: 30, HasAlpha: true, Alpha: "0.5"}, false},
		{"rgba without alpha", "rgba(10,20,30)", Color{R: 10, G: 20, B: 30, HasAlpha: true}, false},
		{"hex", "#cc99ff", Color{R: 204, G: 153, B: 255}, false},
		{"hex padded", "  #abc ", Color{R: 170, G: 187, B: 204}, false},

		{"empty", "", Color{}, true},
		{"blank", "   ", Color{}, true},
		{"named", "purple", Color{}, true},
		{"two channels", "rgb(1,2)", Color{}, true},
		{"five channels", "rgba(1,2,3,4,5)", Color{}, true},
		{"non numeric", "rgb(a,b,c)", Color{}, true},
		{"bad hex length", "#abcd", Color{}, true},
		{"unterminated", "rgb(1,2,3", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAdjustBrightness(t *testing.T) {
	tests := []struct {
		name  string
		input string
		delta int
		want  string
	}{
		{"clamp high", "rgb(250,10,0)", 10, "rgb(255,20,10)"},
		{"clamp low", "rgb(5,0,250)", -10, "rgb(0,0,240)"},
		{"alpha passthrough", "rgba(10,20,30,0.5)", 5, "rgba(15,25,35,0.5)"},
		{"alpha token verbatim", "rgba(10,20,30,50%)", -5, "rgba(5,15,25,50%)"},
		{"hex input", "#cc99ff", -10, "rgb(194,143,245)"},
		{"short hex input", "#abc", 0, "rgb(170,187,204)"},
		{"spaced input", "rgb(1, 2, 3)", 1, "rgb(2,3,4)"},
		{"zero delta", "rgb(1,2,3)", 0, "rgb(1,2,3)"},
		{"large positive", "rgb(0,0,0)", 1000, "rgb(255,255,255)"},
		{"large negative", "rgb(255,255,255)", -1000, "rgb(0,0,0)"},
		{"shift before clamp high", "rgb(300,0,0)", -100, "rgb(200,0,0)"},
		{"shift before clamp low", "rgb(-20,0,0)", 30, "rgb(10,30,30)"},
		{"out of range zero delta", "rgb(300,-5,20)", 0, "rgb(255,0,20)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdjustBrightness(tt.input, tt.delta)
			if err != nil {
				t.Fatalf("AdjustBrightness(%q, %d) error: %v", tt.input, tt.delta, err)
			}
			if got != tt.want {
				t.Errorf("AdjustBrightness(%q, %d) = %q, want %q", tt.input, tt.delta, got, tt.want)
			}
		})
	}
}

func TestAdjustBrightnessInvalid(t *testing.T) {
	if _, err := AdjustBrightness("#abcd", 5); err == nil {
		t.Error("AdjustBrightness should reject malformed hex")
	}
	if _, err := AdjustBrightness("", 5); err == nil {
		t.Error("AdjustBrightness should reject empty input")
	}
}

func TestAdjustRepeatedStaysInRange(t *testing.T) {
	c := MustParse("#cc99ff")
	for i := 0; i < 200; i++ {
		c = c.Adjust(-3)
		for _, v := range []int{c.R, c.G, c.B} {
			if v < 0 || v > 255 {
				t.Fatalf("channel out of range after %d steps: %+v", i+1, c)
			}
		}
	}
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("after 200 steps of -3 color = %v, want black", c)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{RGB(1, 2, 3), "rgb(1,2,3)"},
		{RGB(-1, 256, 3), "rgb(0,255,3)"},
		{Color{R: 300, G: -5, B: 3}, "rgb(255,0,3)"},
		{Color{R: 1, G: 2, B: 3, HasAlpha: true, Alpha: "0.25"}, "rgba(1,2,3,0.25)"},
		{Color{R: 1, G: 2, B: 3, HasAlpha: true}, "rgba(1,2,3)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestHex(t *testing.T) {
	if got := MustParse("rgb(204,153,255)").Hex(); got != "#cc99ff" {
		t.Errorf("Hex() = %q, want #cc99ff", got)
	}
	if got := MustParse("rgba(0,0,0,0.5)").Hex(); got != "#000000" {
		t.Errorf("Hex() = %q, want #000000", got)
	}
	if got := MustParse("rgb(300,-5,0)").Hex(); got != "#ff0000" {
		t.Errorf("Hex() = %q, want #ff0000", got)
	}
}

func TestOpacity(t *testing.T) {
	tests := []struct {
		alpha string
		want  float64
	}{
		{"", 1},
		{"0.5", 0.5},
		{"50%", 0.5},
		{"2", 1},
		{"-1", 0},
		{"junk", 1},
	}
	for _, tt := range tests {
		c := Color{HasAlpha: true, Alpha: tt.alpha}
		if got := c.Opacity(); got != tt.want {
			t.Errorf("Opacity(%q) = %v, want %v", tt.alpha, got, tt.want)
		}
	}
}

func TestNRGBA(t *testing.T) {
	got := MustParse("rgba(10,20,30,0.5)").NRGBA()
	want := color.NRGBA{R: 10, G: 20, B: 30, A: 128}
	if got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
	if a := MustParse("#fff").NRGBA().A; a != 255 {
		t.Errorf("opaque alpha = %d, want 255", a)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid input")
		}
	}()
	MustParse("not a color")
}

func TestTextRoundTrip(t *testing.T) {
	for _, spec := range []string{"rgba(1,2,3,0.5)", "rgb(300,-5,20)"} {
		in := MustParse(spec)
		text, err := in.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if string(text) != spec {
			t.Errorf("MarshalText(%q) = %q", spec, text)
		}
		var out Color
		if err := out.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if out != in {
			t.Errorf("round trip = %+v, want %+v", out, in)
		}
	}
	var out Color
	if err := out.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText should reject invalid colors")
	}
}
