package dither

import (
	"errors"
	"testing"

	"wpgen/palette"
	"wpgen/raster"
)

// gradient fills a w by h buffer with every channel varying independently.
func gradient(w, h int) *raster.Buffer {
	img := raster.New(w, h)
	for y := range h {
		for x := range w {
			img.SetRGB(x, y, raster.RGB{R: uint8(x * 7), G: uint8(y * 11), B: uint8((x + y) * 5)})
		}
	}
	return img
}

func TestMatrixIsPermutation(t *testing.T) {
	var seen [64]bool
	for _, v := range Matrix {
		if v >= 64 || seen[v] {
			t.Fatalf("threshold %d repeated or out of range", v)
		}
		seen[v] = true
	}
}

func TestWebSafeLevels(t *testing.T) {
	img := gradient(37, 29)
	WebSafe(img, false)
	for y := range img.Height() {
		for x := range img.Width() {
			c := img.RGBAt(x, y)
			for _, v := range []uint8{c.R, c.G, c.B} {
				if v%51 != 0 {
					t.Fatalf("(%d,%d) = %v is not web-safe", x, y, c)
				}
			}
		}
	}
}

func TestWebSafeThresholds(t *testing.T) {
	tests := []struct {
		name string
		x    int
		in   uint8
		want uint8
	}{
		{"zero stays", 0, 0, 0},
		{"any remainder beats threshold 0", 0, 1, 51},
		{"remainder equal to threshold rounds down", 1, 26, 0},
		{"remainder above threshold rounds up", 1, 27, 51},
		{"white stays", 1, 255, 255},
		{"near white", 0, 254, 255},
		{"level stays", 5, 153, 153},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := raster.New(8, 1)
			img.SetRGB(tt.x, 0, raster.RGB{R: tt.in, G: tt.in, B: tt.in})
			WebSafe(img, false)
			if got := img.RGBAt(tt.x, 0); got != (raster.RGB{R: tt.want, G: tt.want, B: tt.want}) {
				t.Errorf("expected %d, got %v", tt.want, got)
			}
		})
	}
}

func TestWebSafeVGA(t *testing.T) {
	vga := []raster.RGB{
		{R: 0xc0, G: 0xc0, B: 0xc0},
		{R: 0x80}, {G: 0x80}, {B: 0x80},
		{R: 0x80, G: 0x80}, {R: 0x80, B: 0x80}, {G: 0x80, B: 0x80},
		{R: 0x80, G: 0x80, B: 0x80},
	}
	img := raster.New(len(vga), 8)
	for y := range 8 {
		for x, c := range vga {
			img.SetRGB(x, y, c)
		}
	}
	WebSafe(img, true)
	for y := range 8 {
		for x, c := range vga {
			if got := img.RGBAt(x, y); got != c {
				t.Errorf("(%d,%d): expected %v kept, got %v", x, y, c, got)
			}
		}
	}

	img.SetRGB(0, 0, raster.RGB{R: 0xc0, G: 0xc0, B: 0x80})
	WebSafe(img, true)
	if got := img.RGBAt(0, 0); got.B%51 != 0 {
		t.Errorf("non-VGA colour should be quantized, got %v", got)
	}

	img = raster.New(8, 8)
	for y := range 8 {
		for x := range 8 {
			img.SetRGB(x, y, vga[0])
		}
	}
	WebSafe(img, false)
	if got := img.RGBAt(3, 3); got == vga[0] {
		t.Error("silver must be dithered without includeVGA")
	}
}

func TestFloydSteinbergPalette(t *testing.T) {
	for _, pal := range []palette.Palette{palette.Classic, palette.CGA, palette.Grays(4), palette.WebSafe} {
		img := gradient(31, 17)
		if err := FloydSteinberg(img, pal); err != nil {
			t.Fatal(err)
		}
		for y := range img.Height() {
			for x := range img.Width() {
				if c := img.RGBAt(x, y); !pal.Contains(c) {
					t.Fatalf("(%d,%d) = %v not in palette", x, y, c)
				}
			}
		}
	}
}

func TestFloydSteinbergShift(t *testing.T) {
	// 128 maps to white leaving -127; (-127*7)>>4 is -56, not the rounded
	// -55, so the second pixel sees 72 and turns black.
	img := raster.New(2, 1)
	gray := raster.RGB{R: 128, G: 128, B: 128}
	img.SetRGB(0, 0, gray)
	img.SetRGB(1, 0, gray)
	if err := FloydSteinberg(img, palette.Grays(2)); err != nil {
		t.Fatal(err)
	}
	white := raster.RGB{R: 255, G: 255, B: 255}
	if a, b := img.RGBAt(0, 0), img.RGBAt(1, 0); a != white || b != (raster.RGB{}) {
		t.Errorf("expected white then black, got %v %v", a, b)
	}
}

func TestFloydSteinbergDiffusesDown(t *testing.T) {
	// A single column carries 5/16 of each residual to the row below.
	img := raster.New(1, 2)
	img.SetRGB(0, 0, raster.RGB{R: 100})
	img.SetRGB(0, 1, raster.RGB{R: 100})
	pal := palette.Palette{{}, {R: 200}}
	if err := FloydSteinberg(img, pal); err != nil {
		t.Fatal(err)
	}
	// Row 0: 100 ties between 0 and 200, first wins: residual 100, 500>>4=31.
	// Row 1: 131 is nearer 200.
	if a, b := img.RGBAt(0, 0), img.RGBAt(0, 1); a != (raster.RGB{}) || b != (raster.RGB{R: 200}) {
		t.Errorf("got %v %v", a, b)
	}
}

func TestFloydSteinbergDegenerate(t *testing.T) {
	for _, img := range []*raster.Buffer{raster.New(0, 5), raster.New(5, 0)} {
		if err := FloydSteinberg(img, nil); err != nil {
			t.Errorf("%dx%d: expected no-op, got %v", img.Width(), img.Height(), err)
		}
	}
	if err := FloydSteinberg(raster.New(2, 2), nil); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("expected ErrEmptyPalette, got %v", err)
	}
}

func TestApply(t *testing.T) {
	base := gradient(16, 16)
	for _, m := range append([]Mode{ModeNone}, Modes...) {
		t.Run(string(m), func(t *testing.T) {
			img := raster.Clone(base)
			if err := Apply(img, m, palette.Classic); err != nil {
				t.Fatal(err)
			}
			if m == ModeNone && !raster.Equal(img, base) {
				t.Error("no mode must not change the image")
			}
			if m == ModeNone || m == ModeWebSafe || m == ModeWebSafeVGA {
				return
			}
			for y := range 16 {
				for x := range 16 {
					if c := img.RGBAt(x, y); !palette.Classic.Contains(c) {
						t.Fatalf("(%d,%d) = %v not a classic colour", x, y, c)
					}
				}
			}
		})
	}
	if err := Apply(raster.New(1, 1), "bayer", nil); err == nil {
		t.Error("expected unknown mode error")
	}
	if err := Apply(raster.New(1, 1), ModeFloyd, nil); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("expected wrapped ErrEmptyPalette, got %v", err)
	}
}
