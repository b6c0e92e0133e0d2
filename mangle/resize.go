package mangle

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"

	"wpgen/raster"
)

// fit works out where a src sized picture lands when scaled to width by
// height. It returns the canvas to allocate, the part of src to read and the
// part of the canvas to write. A zero dimension keeps the source size.
//
// With crop the source loses whatever sticks out of the target aspect ratio.
// Otherwise the picture is letterboxed: padded (bars) when pad is set,
// shrunk to the picture when not.
func fit(src image.Rectangle, width, height int, crop, pad bool) (canvas, from, to image.Rectangle) {
	if width == 0 {
		width = src.Dx()
	}
	if height == 0 {
		height = src.Dy()
	}
	canvas = image.Rect(0, 0, width, height)
	from, to = src, canvas

	sw, sh := float64(src.Dx()), float64(src.Dy())
	tw, th := float64(width), float64(height)
	ratio := (sw / sh) / (tw / th)
	if ratio == 1 {
		return canvas, from, to
	}

	half := func(f float64) int { return int(math.Round(f / 2)) }
	switch {
	case crop && ratio < 1:
		d := half(sh - sw*th/tw)
		from.Min.Y, from.Max.Y = from.Min.Y+d, from.Max.Y-d
	case crop:
		d := half(sw - sh*tw/th)
		from.Min.X, from.Max.X = from.Min.X+d, from.Max.X-d
	case ratio < 1 && pad:
		d := half(tw - th*sw/sh)
		to.Min.X, to.Max.X = to.Min.X+d, to.Max.X-d
	case ratio < 1:
		canvas.Max.X = int(math.Round(th * sw / sh))
		to = canvas
	case pad:
		d := half(th - tw*sh/sw)
		to.Min.Y, to.Max.Y = to.Min.Y+d, to.Max.Y-d
	default:
		canvas.Max.Y = int(math.Round(tw * sh / sw))
		to = canvas
	}
	return canvas, from, to
}

// resize scales img to width by height following fit. A non-nil fill paints
// the letterbox bars.
func resize(logger *slog.Logger, img image.Image, width, height int, crop bool, fill *raster.RGB) image.Image {
	b := img.Bounds()
	if (width == 0 || width == b.Dx()) && (height == 0 || height == b.Dy()) {
		return img
	}

	canvas, from, to := fit(b, width, height, crop, fill != nil)
	logger.Info("resizing", "width", to.Dx(), "height", to.Dy())

	dst := image.NewRGBA(canvas)
	if fill != nil && !crop {
		draw.Draw(dst, canvas, image.NewUniform(*fill), image.Point{}, draw.Src)
	}
	draw.CatmullRom.Scale(dst, to, img, from, draw.Over, nil)
	return dst
}
