package encode

import (
	"encoding/binary"
	"fmt"
	"io"

	"wpgen/raster"
)

// pcxHeader is the 128 byte ZSoft Paintbrush header.
type pcxHeader struct {
	Manufacturer uint8
	Version      uint8
	Encoding     uint8
	BitsPerPixel uint8
	XMin, YMin   uint16
	XMax, YMax   uint16
	HDPI, VDPI   uint16
	ColorMap     [48]uint8
	Reserved     uint8
	Planes       uint8
	BytesPerLine uint16
	PaletteInfo  uint16
	HScreenSize  uint16
	VScreenSize  uint16
	Filler       [54]uint8
}

const pcxMaxRun = 63

// writePCX writes a 24-bit PCX file: three RLE encoded 8-bit planes per
// scanline, each padded to an even length.
func writePCX(w io.Writer, img raster.Image) error {
	width, height := img.Width(), img.Height()
	if width == 0 || height == 0 {
		return fmt.Errorf("cannot store an empty %dx%d image", width, height)
	} else if width > 0xffff || height > 0xffff {
		return fmt.Errorf("image of %dx%d too large", width, height)
	}

	bpl := (width + 1) &^ 1
	head := pcxHeader{
		Manufacturer: 0x0a,
		Version:      5,
		Encoding:     1,
		BitsPerPixel: 8,
		XMax:         uint16(width - 1),
		YMax:         uint16(height - 1),
		HDPI:         96,
		VDPI:         96,
		Planes:       3,
		BytesPerLine: uint16(bpl),
		PaletteInfo:  1,
	}
	if err := binary.Write(w, binary.LittleEndian, &head); err != nil {
		return err
	}

	plane := make([]byte, bpl)
	out := make([]byte, 0, bpl*2)
	for y := range height {
		for ch := range 3 {
			for x := range width {
				c := img.RGBAt(x, y)
				plane[x] = [3]uint8{c.R, c.G, c.B}[ch]
			}
			out = appendRLE(out[:0], plane)
			if _, err := w.Write(out); err != nil {
				return err
			}
		}
	}
	return nil
}

// appendRLE encodes data with PCX run-length encoding. Runs longer than
// one byte, and single bytes with both top bits set, become a count byte
// followed by the value.
func appendRLE(dst, data []byte) []byte {
	for i := 0; i < len(data); {
		v := data[i]
		n := 1
		for i+n < len(data) && data[i+n] == v && n < pcxMaxRun {
			n++
		}
		if n > 1 || v >= 0xc0 {
			dst = append(dst, 0xc0|byte(n))
		}
		dst = append(dst, v)
		i += n
	}
	return dst
}
