package imaging

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrColorParse indicates a color string that could not be parsed.
// Use errors.Is to distinguish it from other failures.
var ErrColorParse = errors.New("invalid color")

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// ParseHex parses an RGBA hex color string.
//
// Accepted formats:
//   - "#RRGGBBAA" or "RRGGBBAA" (8 digits)
//   - "#RRGGBB" or "RRGGBB" (6 digits, alpha defaults to 255)
//
// Digits are case-insensitive. Any other input returns an error
// wrapping ErrColorParse.
func ParseHex(s string) (RGBAColor, error) {
	hex := strings.TrimPrefix(s, "#")

	if len(hex) != 6 && len(hex) != 8 {
		return RGBAColor{}, fmt.Errorf("%w: %q has %d hex digits, expected 6 or 8",
			ErrColorParse, s, len(hex))
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return RGBAColor{}, fmt.Errorf("%w: %q contains non-hexadecimal characters",
			ErrColorParse, s)
	}

	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}

	return RGBAColor{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Hex returns the color formatted as "#RRGGBBAA" with uppercase digits.
func (c RGBAColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Distance returns the Euclidean distance between two colors in
// 4-dimensional RGBA space. The maximum possible distance is
// sqrt(4 * 255^2), roughly 510.
func Distance(a, b RGBAColor) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	da := float64(a.A) - float64(b.A)
	return math.Sqrt(dr*dr + dg*dg + db*db + da*da)
}

// Matches reports whether two colors match under the given tolerance.
//
// With tolerance 0 the comparison is exact component equality; no
// distance is computed. With tolerance > 0 the colors match when their
// RGBA Euclidean distance is less than or equal to the tolerance
// (boundary inclusive).
//
// Both colors are assumed to be in range; the tolerance is assumed to
// be non-negative. Matches is pure and symmetric in its color arguments.
func Matches(a, b RGBAColor, tolerance int) bool {
	if tolerance == 0 {
		return a == b
	}
	return Distance(a, b) <= float64(tolerance)
}
