package palette

import (
	"image/color"

	"wpgen/raster"
)

// Palette is an ordered list of colours. Order matters: nearest-colour
// searches prefer the earliest of equally distant entries.
type Palette []raster.RGB

// Index returns the index of the entry nearest to c by squared RGB
// distance. It returns 0 for an empty palette.
func (p Palette) Index(c raster.RGB) int {
	ret, best := 0, 0
	for i, v := range p {
		dr := int(c.R) - int(v.R)
		dg := int(c.G) - int(v.G)
		db := int(c.B) - int(v.B)
		sum := dr*dr + dg*dg + db*db
		if i == 0 || sum < best {
			if sum == 0 {
				return i
			}
			ret, best = i, sum
		}
	}
	return ret
}

// Convert returns the entry nearest to c.
func (p Palette) Convert(c raster.RGB) raster.RGB {
	if len(p) == 0 {
		return raster.RGB{}
	}
	return p[p.Index(c)]
}

// Contains reports whether c is exactly one of the entries.
func (p Palette) Contains(c raster.RGB) bool {
	for _, v := range p {
		if v == c {
			return true
		}
	}
	return false
}

// Colors converts p for use with image.Paletted and the standard encoders.
func (p Palette) Colors() color.Palette {
	res := make(color.Palette, len(p))
	for i, c := range p {
		res[i] = c
	}
	return res
}

// From converts a standard palette, dropping alpha.
func From(pal color.Palette) Palette {
	res := make(Palette, len(pal))
	for i, col := range pal {
		c := color.RGBAModel.Convert(col).(color.RGBA)
		res[i] = raster.RGB{R: c.R, G: c.G, B: c.B}
	}
	return res
}
