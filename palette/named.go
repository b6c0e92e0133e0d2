package palette

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"wpgen/raster"
)

// Classic is the 16-colour VGA palette.
var Classic = Palette{
	{0, 0, 0}, {128, 128, 128}, {192, 192, 192}, {255, 0, 0},
	{128, 0, 0}, {0, 255, 0}, {0, 128, 0}, {0, 0, 255},
	{0, 0, 128}, {255, 0, 255}, {128, 0, 128}, {0, 255, 255},
	{0, 128, 128}, {255, 255, 0}, {128, 128, 0}, {255, 255, 255},
}

// CGA is the canonical 16-colour CGA palette, dark yellow shown as brown.
var CGA = Palette{
	{0, 0, 0}, {0, 0, 170}, {0, 170, 0}, {0, 170, 170},
	{170, 0, 0}, {170, 0, 170}, {170, 85, 0}, {170, 170, 170},
	{85, 85, 85}, {85, 85, 255}, {85, 255, 85}, {85, 255, 255},
	{255, 85, 85}, {255, 85, 255}, {255, 255, 85}, {255, 255, 255},
}

// Windows20 is Classic plus the four extra system colours of 256-colour
// Windows displays.
var Windows20 = append(slices.Clone(Classic),
	raster.RGB{R: 192, G: 220, B: 192},
	raster.RGB{R: 160, G: 160, B: 164},
	raster.RGB{R: 255, G: 251, B: 240},
	raster.RGB{R: 166, G: 202, B: 240},
)

// WebSafe is the 6x6x6 cube with channel levels multiples of 51, in
// red-major order.
var WebSafe = cube(6, 51)

// EGA is the 4x4x4 cube with channel levels multiples of 85.
var EGA = cube(4, 85)

// WebSafeVGA is WebSafe plus the VGA colours it lacks.
var WebSafeVGA = append(slices.Clone(WebSafe),
	raster.RGB{R: 128}, raster.RGB{G: 128}, raster.RGB{B: 128},
	raster.RGB{R: 128, G: 128}, raster.RGB{R: 128, B: 128}, raster.RGB{G: 128, B: 128},
	raster.RGB{R: 128, G: 128, B: 128}, raster.RGB{R: 192, G: 192, B: 192},
)

func cube(levels, step int) Palette {
	res := make(Palette, 0, levels*levels*levels)
	for r := range levels {
		for g := range levels {
			for b := range levels {
				res = append(res, raster.RGB{R: uint8(r * step), G: uint8(g * step), B: uint8(b * step)})
			}
		}
	}
	return res
}

// Grays returns n evenly spaced grays from black to white. n below 2 is
// raised to 2.
func Grays(n int) Palette {
	n = max(n, 2)
	res := make(Palette, n)
	for i := range n {
		v := uint8((i*255 + (n-1)/2) / (n - 1))
		res[i] = raster.RGB{R: v, G: v, B: v}
	}
	return res
}

var builtins = map[string]func() Palette{
	"bw":          func() Palette { return Grays(2) },
	"classic":     func() Palette { return Classic },
	"vga16":       func() Palette { return Classic },
	"cga16":       func() Palette { return CGA },
	"ega64":       func() Palette { return EGA },
	"windows20":   func() Palette { return Windows20 },
	"websafe":     func() Palette { return WebSafe },
	"websafe-vga": func() Palette { return WebSafeVGA },
}

// Builtin returns a copy of a named palette. Besides the fixed names,
// "grayN" yields Grays(N) for N in [2, 256].
func Builtin(name string) (Palette, error) {
	name = strings.ToLower(name)
	if f, ok := builtins[name]; ok {
		return slices.Clone(f()), nil
	}
	if rest, ok := strings.CutPrefix(name, "gray"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 2 || n > 256 {
			return nil, fmt.Errorf("invalid gray palette size %q", rest)
		}
		return Grays(n), nil
	}
	return nil, fmt.Errorf("unknown palette %q", name)
}

// BuiltinNames lists the fixed built-in names in order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins)+1)
	for name := range builtins {
		names = append(names, name)
	}
	names = append(names, "gray16")
	slices.Sort(names)
	return names
}
