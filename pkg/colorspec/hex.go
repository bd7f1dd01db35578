package colorspec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	hexPattern = regexp.MustCompile(`(?i)^#?(?:[0-9a-f]{3}){1,2}$`)
	hexDigits  = regexp.MustCompile(`(?i)^[0-9a-f]{6}$`)
)

// IsValidHex reports whether s is exactly three or six hex digits after an
// optional leading '#'.
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// HexToRGB converts "#abc" or "#aabbcc" (the '#' is optional) to
// "rgb(170,187,204)". Three-digit input is expanded by doubling each digit.
func HexToRGB(hex string) (string, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}
	if len(digits) != 6 {
		return "", &ParseError{Input: hex, Reason: fmt.Sprintf("hex color needs 3 or 6 digits, got %d", len(digits))}
	}

	if !hexDigits.MatchString(digits) {
		return "", &ParseError{Input: hex, Reason: "not a hex number"}
	}

	c, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return "", &ParseError{Input: hex, Reason: "not a hex number"}
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b), nil
}
