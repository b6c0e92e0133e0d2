// Package shape draws the primitives wallpapers are built from.
package shape

import (
	"errors"
	"fmt"
	"image"

	"wpgen/raster"
)

// ErrInvalidGeometry reports a rectangle whose maximum lies before its
// minimum. It is never corrected silently.
var ErrInvalidGeometry = errors.New("invalid geometry")

// BorderedBox fills r with a checkerboard of c1 and c2: a pixel gets c1 when
// the parities of its x and y agree. A non-nil border replaces the outermost
// ring of the box. With wrap, coordinates outside img wrap to the opposite
// edge; without it the box is clipped to img.
//
// An r with zero width or height draws nothing.
func BorderedBox(img raster.Image, border *raster.RGB, c1, c2 raster.RGB, r image.Rectangle, wrap bool) error {
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y
	if x1 < x0 || y1 < y0 {
		return fmt.Errorf("box %v: %w", r, ErrInvalidGeometry)
	}
	w, h := img.Width(), img.Height()
	if w == 0 || h == 0 || x0 == x1 || y0 == y1 {
		return nil
	}
	if !wrap {
		x0, y0 = max(x0, 0), max(y0, 0)
		x1, y1 = min(x1, w), min(y1, h)
		if x0 >= x1 || y0 >= y1 {
			return nil
		}
	}

	for y := y0; y < y1; y++ {
		yp := raster.Wrap(y, h)
		for x := x0; x < x1; x++ {
			xp := raster.Wrap(x, w)
			switch {
			case border != nil && (y == y0 || y == y1-1 || x == x0 || x == x1-1):
				img.SetRGB(xp, yp, *border)
			case yp%2 == xp%2:
				img.SetRGB(xp, yp, c1)
			default:
				img.SetRGB(xp, yp, c2)
			}
		}
	}
	return nil
}
