package dither

import (
	"fmt"
	"image"
	"image/color"

	ditherlib "github.com/makeworld-the-better-one/dither/v2"

	"wpgen/palette"
	"wpgen/raster"
)

// Ditherers beyond the two built in here, for reworking existing pictures.
const (
	ModeAtkinson   Mode = "atkinson"
	ModeStucki     Mode = "stucki"
	ModeSierraLite Mode = "sierra-lite"
	ModeClustered  Mode = "clustered"
)

var diffusionMatrices = map[Mode]ditherlib.ErrorDiffusionMatrix{
	ModeAtkinson:   ditherlib.Atkinson,
	ModeStucki:     ditherlib.Stucki,
	ModeSierraLite: ditherlib.SierraLite,
}

var orderedMatrices = map[Mode]ditherlib.OrderedDitherMatrix{
	ModeClustered: ditherlib.ClusteredDot4x4,
}

// external dithers img through the dither library, which works in linear
// RGB and scans serpentine.
func external(img raster.Image, m Mode, pal palette.Palette) error {
	if len(pal) == 0 {
		return ErrEmptyPalette
	}
	w, h := img.Width(), img.Height()
	if w == 0 || h == 0 {
		return nil
	}

	d := ditherlib.NewDitherer(pal.Colors())
	if d == nil {
		return fmt.Errorf("palette of %d colors rejected", len(pal))
	}
	if mat, ok := diffusionMatrices[m]; ok {
		d.Matrix = mat
		d.Serpentine = true
	} else {
		d.Mapper = ditherlib.PixelMapperFromMatrix(orderedMatrices[m], 1.0)
	}

	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			c := img.RGBAt(x, y)
			src.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}

	var out image.Image = src
	if res := d.Dither(src); res != nil {
		out = res
	}

	for y := range h {
		for x := range w {
			c := color.RGBAModel.Convert(out.At(x, y)).(color.RGBA)
			img.SetRGB(x, y, raster.RGB{R: c.R, G: c.G, B: c.B})
		}
	}
	return nil
}
