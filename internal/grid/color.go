package grid

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" into an NRGBA color.
// The leading '#' is optional and hex digits may be either case. A color
// without an alpha byte is fully opaque.
func ParseHexColor(s string) (color.NRGBA, error) {
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("%w: empty color string", ErrInvalidParameter)
	}
	if s[0] == '#' {
		s = s[1:]
	}

	alpha := uint8(0xFF)
	if len(s) == 8 {
		v, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: bad alpha digits in %q", ErrInvalidParameter, s)
		}
		alpha = uint8(v)
		s = s[:6]
	}
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: hex color must have 6 or 8 digits", ErrInvalidParameter)
	}

	c, err := colorful.Hex("#" + s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
