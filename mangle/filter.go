package mangle

import (
	"image"
	"log/slog"

	"github.com/disintegration/gift"

	"wpgen/group"
	"wpgen/raster"
	"wpgen/tile"
)

// blur softens src so that hard edges do not dominate the recomposed tile.
func blur(src image.Image, sigma float32) image.Image {
	g := gift.New(gift.GaussianBlur(sigma))
	dst := image.NewRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst
}

// recompose tiles img through fn into a width by height seamless tile.
// Zero sizes keep the source dimension.
func recompose(logger *slog.Logger, img raster.Image, width, height int, fn group.Func) raster.Image {
	if width == 0 {
		width = img.Width()
	}
	if height == 0 {
		height = img.Height()
	}

	logger.Info("recomposing", "width", width, "height", height)
	return tile.Compose(width, height, img, tile.Full(img), fn)
}
