package raster

import "fmt"

// Framebuffer adapts a display surface of 0x00RRGGBB words to Image.
type Framebuffer struct {
	Pix    []uint32
	width  int
	height int
}

var _ Image = &Framebuffer{}

// NewFramebuffer wraps pix, which must hold at least width*height words.
// A nil pix allocates a fresh surface.
func NewFramebuffer(width, height int, pix []uint32) *Framebuffer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("raster: invalid size %dx%d", width, height))
	}
	if pix == nil {
		pix = make([]uint32, width*height)
	} else if len(pix) < width*height {
		panic(fmt.Sprintf("raster: framebuffer of %d words too small for %dx%d", len(pix), width, height))
	}
	return &Framebuffer{Pix: pix, width: width, height: height}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

func (f *Framebuffer) index(x, y int) int {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		panic(fmt.Sprintf("raster: pixel (%d,%d) out of bounds %dx%d", x, y, f.width, f.height))
	}
	return y*f.width + x
}

func (f *Framebuffer) RGBAt(x, y int) RGB {
	d := f.Pix[f.index(x, y)]
	return RGB{R: uint8(d >> 16), G: uint8(d >> 8), B: uint8(d)}
}

func (f *Framebuffer) SetRGB(x, y int, c RGB) {
	f.Pix[f.index(x, y)] = uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Blank returns an in-memory Buffer: a display surface cannot allocate
// siblings of itself.
func (f *Framebuffer) Blank(width, height int) Image {
	return New(width, height)
}
