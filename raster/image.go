package raster

import (
	"fmt"
	"image/color"
)

// RGB is an opaque 8-bit-per-channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) RGBA() (uint32, uint32, uint32, uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}.RGBA()
}

// Image is the pixel store every algorithm in this module works against.
// Coordinates outside 0 <= x < Width(), 0 <= y < Height() are a caller bug
// and implementations panic on them.
type Image interface {
	Width() int
	Height() int
	RGBAt(x, y int) RGB
	SetRGB(x, y int, c RGB)
	// Blank returns a new zero-filled image of the given size.
	Blank(width, height int) Image
}

// Buffer is an in-memory RGB image.
type Buffer struct {
	// Pix holds the image's pixels in R, G, B order. The pixel at (x, y)
	// starts at Pix[(y*width + x)*3].
	Pix    []uint8
	width  int
	height int
}

var _ Image = &Buffer{}

// New returns a zero-filled buffer.
func New(width, height int) *Buffer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("raster: invalid size %dx%d", width, height))
	}
	return &Buffer{
		Pix:    make([]uint8, width*height*3),
		width:  width,
		height: height,
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) offset(x, y int) int {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		panic(fmt.Sprintf("raster: pixel (%d,%d) out of bounds %dx%d", x, y, b.width, b.height))
	}
	return (y*b.width + x) * 3
}

func (b *Buffer) RGBAt(x, y int) RGB {
	i := b.offset(x, y)
	return RGB{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2]}
}

func (b *Buffer) SetRGB(x, y int, c RGB) {
	i := b.offset(x, y)
	b.Pix[i] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
}

func (b *Buffer) Blank(width, height int) Image {
	return New(width, height)
}

// Clone returns a deep copy of img as a Buffer.
func Clone(img Image) *Buffer {
	w, h := img.Width(), img.Height()
	dst := New(w, h)
	for y := range h {
		for x := range w {
			dst.SetRGB(x, y, img.RGBAt(x, y))
		}
	}
	return dst
}

// Equal reports whether two images have the same size and pixels.
func Equal(a, b Image) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := range a.Height() {
		for x := range a.Width() {
			if a.RGBAt(x, y) != b.RGBAt(x, y) {
				return false
			}
		}
	}
	return true
}
