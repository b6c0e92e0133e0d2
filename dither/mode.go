package dither

import (
	"fmt"

	"wpgen/palette"
	"wpgen/raster"
)

// Mode names a ditherer.
type Mode string

const (
	ModeNone       Mode = ""
	ModeWebSafe    Mode = "websafe"
	ModeWebSafeVGA Mode = "websafe-vga"
	ModeFloyd      Mode = "floyd"
)

// Modes lists the selectable ditherers.
var Modes = []Mode{
	ModeWebSafe, ModeWebSafeVGA, ModeFloyd,
	ModeAtkinson, ModeStucki, ModeSierraLite, ModeClustered,
}

// Apply runs the ditherer named by m on img. The web-safe modes ignore pal.
func Apply(img raster.Image, m Mode, pal palette.Palette) error {
	switch m {
	case ModeNone:
	case ModeWebSafe:
		WebSafe(img, false)
	case ModeWebSafeVGA:
		WebSafe(img, true)
	case ModeFloyd:
		if err := FloydSteinberg(img, pal); err != nil {
			return fmt.Errorf("could not dither: %w", err)
		}
	case ModeAtkinson, ModeStucki, ModeSierraLite, ModeClustered:
		if err := external(img, m, pal); err != nil {
			return fmt.Errorf("could not dither: %w", err)
		}
	default:
		return fmt.Errorf("unknown dither mode %q", m)
	}
	return nil
}
