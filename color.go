package sierpinski

import (
	"image/color"
)

// RGB represents an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Color converts RGB to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// FromColor converts a standard color.Color to RGB.
// Alpha is dropped; premultiplied components are kept as is.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with an optional leading '#'.
// Malformed input yields Black.
func Hex(hex string) RGB {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return Black
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return Black
		}
	default:
		return Black
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Common colors
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{255, 255, 255}
	Red     = RGB{255, 0, 0}
	Green   = RGB{0, 255, 0}
	Blue    = RGB{0, 0, 255}
	Yellow  = RGB{255, 255, 0}
	Cyan    = RGB{0, 255, 255}
	Magenta = RGB{255, 0, 255}
)
