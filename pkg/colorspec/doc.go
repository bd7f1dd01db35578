// Package colorspec parses and adjusts the color strings used by the
// parallelogram pattern.
//
// # Accepted Forms
//
// A color spec is either a hex string or a functional rgb string:
//
//   - "#rgb" or "#rrggbb", with or without the leading '#', case-insensitive
//   - "rgb(r, g, b)" with integer channels
//   - "rgba(r, g, b, a)" where the alpha token is kept verbatim
//
// Hex input is normalized through [HexToRGB] before channel parsing, so every
// parsed [Color] carries three integer channels in [0, 255] plus an optional
// alpha token.
//
// # Brightness
//
// [Color.Adjust] adds the same delta to all three channels and clamps the
// result. The alpha token never changes:
//
//	c := colorspec.MustParse("rgba(10,20,30,0.5)")
//	fmt.Println(c.Adjust(5)) // rgba(15,25,35,0.5)
//
// [AdjustBrightness] is the string-in, string-out form.
//
// # Errors
//
// Malformed input never produces NaN channels. [Parse], [HexToRGB] and
// [AdjustBrightness] return a [*ParseError] and callers decide whether to
// fall back to a default color.
package colorspec
