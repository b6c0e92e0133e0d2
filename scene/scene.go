// Package scene composes random wallpapers from boxes, symmetry groups and
// web-safe dithering.
package scene

import (
	"image"

	"wpgen/dither"
	"wpgen/group"
	"wpgen/random"
	"wpgen/raster"
	"wpgen/shape"
	"wpgen/tile"
)

const (
	minSide  = 128
	maxSide  = 256
	boxCount = 30
)

// Groups is the table a recomposition slot is drawn from. p4m and p4m_alt
// appear twice and are therefore twice as likely.
var Groups = [14]group.Func{
	group.P4m, group.P4mAlt, group.P3m1, group.P6m, group.P6mAlt,
	group.P3m1Alt1, group.P3m1Alt2,
	group.P6mAlt1a, group.P6mAlt1b, group.P6mAlt2a, group.P6mAlt2b,
	group.P4m, group.P4mAlt, group.Pmm,
}

// Generate draws one wallpaper. Every random choice comes from rng in a
// fixed order, so a seeded source reproduces the same image.
func Generate(rng random.Source) *raster.Buffer {
	img := raster.New(side(rng), side(rng))
	RandomBoxes(img, rng)

	if rng.UniformInt(0, 1) == 0 {
		w2, h2 := side(rng), side(rng)
		fn := Groups[rng.UniformInt(0, len(Groups)-1)]
		img = tile.Compose(w2, h2, img, tile.Full(img), fn).(*raster.Buffer)
	}

	dither.WebSafe(img, true)
	return img
}

// side picks a dimension in [128, 256] rounded down to a multiple of 8.
func side(rng random.Source) int {
	return rng.UniformInt(minSide, maxSide) &^ 7
}

// RandomBoxes draws 30 black-bordered boxes of one random colour each,
// wrapping around the edges of img.
func RandomBoxes(img raster.Image, rng random.Source) {
	w, h := img.Width(), img.Height()
	if w == 0 || h == 0 {
		return
	}

	border := raster.RGB{}
	for range boxCount {
		x0 := rng.UniformInt(0, w-1)
		x1 := x0 + rng.UniformInt(3, max(3, w*3/4))
		y0 := rng.UniformInt(0, h-1)
		y1 := y0 + rng.UniformInt(3, max(3, h*3/4))
		c := raster.RGB{
			R: uint8(rng.UniformInt(0, 255)),
			G: uint8(rng.UniformInt(0, 255)),
			B: uint8(rng.UniformInt(0, 255)),
		}

		// x1 > x0 and y1 > y0 by construction.
		_ = shape.BorderedBox(img, &border, c, c, image.Rect(x0, y0, x1, y1), true)
	}
}
