package dither

import (
	"errors"

	"wpgen/palette"
	"wpgen/raster"
)

// ErrEmptyPalette is returned when there is nothing to quantize to.
var ErrEmptyPalette = errors.New("empty palette")

// FloydSteinberg quantizes img in place to pal, diffusing each pixel's
// residual to its unvisited neighbours with weights 7, 3, 5 and 1 sixteenths
// computed by arithmetic shift. Residuals that would fall outside the image
// are dropped. A zero-area image is left untouched.
func FloydSteinberg(img raster.Image, pal palette.Palette) error {
	w, h := img.Width(), img.Height()
	if w == 0 || h == 0 {
		return nil
	}
	if len(pal) == 0 {
		return ErrEmptyPalette
	}

	// Accumulated error for the current and the next row, per channel.
	var cur, next [3][]int
	for ch := range 3 {
		cur[ch] = make([]int, w)
		next[ch] = make([]int, w)
	}

	for y := range h {
		for x := range w {
			c := img.RGBAt(x, y)
			cur[0][x] = next[0][x] + int(c.R)
			cur[1][x] = next[1][x] + int(c.G)
			cur[2][x] = next[2][x] + int(c.B)
			next[0][x], next[1][x], next[2][x] = 0, 0, 0
		}

		for x := range w {
			r := clamp8(cur[0][x])
			g := clamp8(cur[1][x])
			b := clamp8(cur[2][x])
			q := pal[pal.Index(raster.RGB{R: r, G: g, B: b})]
			img.SetRGB(x, y, q)

			diffuse(cur[0], next[0], x, int(r)-int(q.R))
			diffuse(cur[1], next[1], x, int(g)-int(q.G))
			diffuse(cur[2], next[2], x, int(b)-int(q.B))
		}
	}
	return nil
}

func diffuse(cur, next []int, x, e int) {
	last := len(cur) - 1
	if x < last {
		cur[x+1] += (e * 7) >> 4
		next[x+1] += e >> 4
	}
	if x > 0 {
		next[x-1] += (e * 3) >> 4
	}
	next[x] += (e * 5) >> 4
}

func clamp8(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
