// Package dither reduces images to limited palettes.
package dither

import "wpgen/raster"

// Matrix is the 8x8 Bayer threshold table, indexed by (y&7)*8 + (x&7).
var Matrix = [64]uint8{
	0, 32, 8, 40, 2, 34, 10, 42,
	48, 16, 56, 24, 50, 18, 58, 26,
	12, 44, 4, 36, 14, 46, 6, 38,
	60, 28, 52, 20, 62, 30, 54, 22,
	3, 35, 11, 43, 1, 33, 9, 41,
	51, 19, 59, 27, 49, 17, 57, 25,
	15, 47, 7, 39, 13, 45, 5, 37,
	63, 31, 55, 23, 61, 29, 53, 21,
}

// WebSafe quantizes every channel of img in place to a multiple of 51, the
// levels of the 216-colour web-safe palette, rounding up where the channel's
// remainder beats the Bayer threshold of its pixel. With includeVGA, pixels
// already equal to one of the eight VGA colours outside that palette are left
// alone.
func WebSafe(img raster.Image, includeVGA bool) {
	for y := range img.Height() {
		row := Matrix[(y&7)*8 : (y&7)*8+8]
		for x := range img.Width() {
			c := img.RGBAt(x, y)
			if includeVGA && isVGAExtra(c) {
				continue
			}

			t := row[x&7]
			img.SetRGB(x, y, raster.RGB{
				R: quantize51(c.R, t),
				G: quantize51(c.G, t),
				B: quantize51(c.B, t),
			})
		}
	}
}

func quantize51(v, threshold uint8) uint8 {
	cm := v % 51
	if int(threshold) < int(cm)*64/51 {
		return v - cm + 51
	}
	return v - cm
}

// isVGAExtra matches silver and the {0,0x80} cube. Black in that cube is
// web-safe already, so skipping it changes nothing.
func isVGAExtra(c raster.RGB) bool {
	if c.R == 0xc0 {
		return c.G == 0xc0 && c.B == 0xc0
	}
	half := func(v uint8) bool { return v == 0 || v == 0x80 }
	return half(c.R) && half(c.G) && half(c.B)
}
