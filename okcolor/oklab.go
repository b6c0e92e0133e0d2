// based on:
// https://bottosson.github.io/posts/oklab/

// Package okcolor converts 8-bit sRGB colours to and from the OKLab space.
package okcolor

import (
	"math"

	"wpgen/raster"
)

type Lab struct {
	L float64 // perceived lightness
	A float64 // how green/red the color is
	B float64 // how blue/yellow the color is
}

// FromRGB converts an 8-bit sRGB colour.
func FromRGB(c raster.RGB) Lab {
	r, g, b := toLinear(c.R), toLinear(c.G), toLinear(c.B)

	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return Lab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// RGB converts back to 8-bit sRGB. Out of gamut channels are clamped.
func (lc Lab) RGB() raster.RGB {
	l := lc.L + 0.3963377774*lc.A + 0.2158037573*lc.B
	m := lc.L - 0.1055613458*lc.A - 0.0638541728*lc.B
	s := lc.L - 0.0894841775*lc.A - 1.2914855480*lc.B
	l, m, s = l*l*l, m*m*m, s*s*s

	return raster.RGB{
		R: fromLinear(+4.0767416621*l - 3.3077115913*m + 0.2309699292*s),
		G: fromLinear(-1.2684380046*l + 2.6097574011*m - 0.3413193965*s),
		B: fromLinear(-0.0041960863*l - 0.7034186147*m + 1.7076147010*s),
	}
}

// Distance is the euclidean distance between two colours.
func (lc Lab) Distance(o Lab) float64 {
	dl, da, db := lc.L-o.L, lc.A-o.A, lc.B-o.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// Chroma is the distance from the neutral axis.
func (lc Lab) Chroma() float64 {
	return math.Hypot(lc.A, lc.B)
}

func toLinear(v uint8) float64 {
	x := float64(v) / 255
	if x >= 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return x / 12.92
}

const pow float64 = 1.0 / 2.4

func fromLinear(x float64) uint8 {
	if x >= 0.0031308 {
		x = math.Pow(x, pow)*1.055 - 0.055
	} else {
		x *= 12.92
	}
	return uint8(math.Round(255 * min(max(x, 0), 1)))
}
