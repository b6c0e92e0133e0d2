package raster

import (
	"image"
	"image/color"
)

type imageView struct {
	img Image
}

// AsImage exposes img as a read-only image.Image anchored at the origin.
// Pixels are fetched through RGBAt only, so any Image implementation can be
// handed to the standard encoders.
func AsImage(img Image) image.Image {
	if b, ok := img.(*Buffer); ok {
		return bufferView{b}
	}
	return imageView{img}
}

func (v imageView) ColorModel() color.Model { return color.RGBAModel }

func (v imageView) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.img.Width(), v.img.Height())
}

func (v imageView) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(v.Bounds())) {
		return color.RGBA{}
	}
	return v.img.RGBAt(x, y)
}

// bufferView adds the RGBA64At fast path used by image/png and friends.
type bufferView struct {
	*Buffer
}

func (v bufferView) ColorModel() color.Model { return color.RGBAModel }

func (v bufferView) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.width, v.height)
}

func (v bufferView) At(x, y int) color.Color {
	return v.RGBA64At(x, y)
}

func (v bufferView) RGBA64At(x, y int) color.RGBA64 {
	if !(image.Point{X: x, Y: y}.In(v.Bounds())) {
		return color.RGBA64{}
	}
	c := v.RGBAt(x, y)
	r, g, b := uint16(c.R), uint16(c.G), uint16(c.B)
	return color.RGBA64{R: r<<8 | r, G: g<<8 | g, B: b<<8 | b, A: 0xFFFF}
}

// FromImage copies a decoded image into a Buffer. Alpha is dropped after
// compositing over black.
func FromImage(src image.Image) *Buffer {
	r := src.Bounds()
	dst := New(r.Dx(), r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.RGBAModel.Convert(src.At(x, y)).(color.RGBA)
			dst.SetRGB(x-r.Min.X, y-r.Min.Y, RGB{R: c.R, G: c.G, B: c.B})
		}
	}
	return dst
}
