package tile

import (
	"wpgen/group"
	"wpgen/raster"
)

// Rect delimits a source area in pixel space. It may extend past the source
// image, in which case it reads the wrapped-around tiling.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Full covers all of img.
func Full(img raster.Image) Rect {
	return Rect{X1: float64(img.Width()), Y1: float64(img.Height())}
}

// Compose creates a width by height image whose pixels are read from r of
// src through fn. fn maps normalised destination coordinates to normalised
// coordinates within r; a nil fn means group.Pmm. src is not modified and
// the result is created with src.Blank.
func Compose(width, height int, src raster.Image, r Rect, fn group.Func) raster.Image {
	if fn == nil {
		fn = group.Pmm
	}
	dst := src.Blank(width, height)
	fw, fh := float64(width), float64(height)
	for y := range height {
		for x := range width {
			px, py := fn(float64(x)/fw, float64(y)/fh)
			sx := r.X0 + (r.X1-r.X0)*px
			sy := r.Y0 + (r.Y1-r.Y0)*py
			dst.SetRGB(x, y, SamplePoint(src, sx, sy))
		}
	}
	return dst
}

// CopyTiled fills every pixel of dst with src repeated across it, shifted by
// (ox, oy). The two images need not share a size.
func CopyTiled(dst, src raster.Image, ox, oy int) {
	sw, sh := src.Width(), src.Height()
	if sw == 0 || sh == 0 {
		return
	}
	for y := range dst.Height() {
		yp := raster.Wrap(y+oy, sh)
		for x := range dst.Width() {
			dst.SetRGB(x, y, src.RGBAt(raster.Wrap(x+ox, sw), yp))
		}
	}
}
