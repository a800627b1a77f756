// Package color provides structural helpers for hex color strings.
//
// Colors are handled as strings: the helpers slice and append characters and
// never parse hex digits, so malformed input passes through unchanged.
package color

import (
	"fmt"
	"math"
	"strings"
)

const rgbLen = 6

// StripAlpha drops an alpha channel, returning "#RRGGBB".
// Inputs shorter than six characters are returned with a leading '#' as-is.
func StripAlpha(hex string) string {
	return "#" + rgb(hex)
}

// ApplyAlpha replaces any alpha channel on hex with the given opacity,
// returning "#RRGGBBAA" with the alpha byte in uppercase hex.
// Opacity is clamped to [0, 1] and rounded half away from zero.
func ApplyAlpha(hex string, opacity float64) string {
	return fmt.Sprintf("#%s%02X", rgb(hex), AlphaByte(opacity))
}

// AlphaByte converts a normalized opacity into its 8-bit channel value.
func AlphaByte(opacity float64) uint8 {
	return uint8(math.Round(ClampOpacity(opacity) * 255))
}

// ClampOpacity limits opacity to [0, 1]. NaN is treated as fully transparent.
func ClampOpacity(opacity float64) float64 {
	switch {
	case math.IsNaN(opacity), opacity < 0:
		return 0
	case opacity > 1:
		return 1
	default:
		return opacity
	}
}

func rgb(hex string) string {
	h := strings.TrimLeft(hex, "#")
	if len(h) >= rgbLen {
		return h[:rgbLen]
	}
	return h
}
