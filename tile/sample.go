// Package tile samples images with wraparound and builds wallpaper-group
// composites from them.
package tile

import (
	"math"

	"wpgen/raster"
)

// SamplePoint returns the bilinearly interpolated colour at (x, y). Points
// outside the image wrap around as though the image tiled the plane. A
// zero-sized image samples as black.
//
// Channels are interpolated on their stored values; there is no conversion
// to linear light, so blends between saturated colours come out darker than
// a gamma-correct blend would.
func SamplePoint(img raster.Image, x, y float64) raster.RGB {
	w, h := img.Width(), img.Height()
	if w == 0 || h == 0 {
		return raster.RGB{}
	}

	x = wrapf(x, float64(w))
	y = wrapf(y, float64(h))
	xf, yf := math.Floor(x), math.Floor(y)
	x0, y0 := int(xf), int(yf)
	x1, y1 := (x0+1)%w, (y0+1)%h
	tx, ty := x-xf, y-yf

	c00 := img.RGBAt(x0, y0)
	c10 := img.RGBAt(x1, y0)
	c01 := img.RGBAt(x0, y1)
	c11 := img.RGBAt(x1, y1)

	return raster.RGB{
		R: bilerp(c00.R, c10.R, c01.R, c11.R, tx, ty),
		G: bilerp(c00.G, c10.G, c01.G, c11.G, tx, ty),
		B: bilerp(c00.B, c10.B, c01.B, c11.B, tx, ty),
	}
}

// wrapf is a real-valued modulo that never returns a negative value or m.
func wrapf(v, m float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Mod(v, m)
	if v < 0 {
		v += m
	}
	// A tiny negative v rounds up to exactly m above.
	if v >= m {
		v = 0
	}
	return v
}

func bilerp(c00, c10, c01, c11 uint8, tx, ty float64) uint8 {
	top := float64(c00) + (float64(c10)-float64(c00))*tx
	bottom := float64(c01) + (float64(c11)-float64(c01))*tx
	v := math.Floor(top + (bottom-top)*ty)
	return uint8(max(0, min(255, v)))
}
