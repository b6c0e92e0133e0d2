package palette

import (
	"cmp"
	"slices"

	"wpgen/okcolor"
)

// SortByLightness returns a copy of p ordered from dark to light by OKLab
// lightness, less saturated colours first among equals.
func SortByLightness(p Palette) Palette {
	type entry struct {
		lab okcolor.Lab
		idx int
	}

	entries := make([]entry, len(p))
	for i, c := range p {
		entries[i] = entry{lab: okcolor.FromRGB(c), idx: i}
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(a.lab.L, b.lab.L); c != 0 {
			return c
		}
		return cmp.Compare(a.lab.Chroma(), b.lab.Chroma())
	})

	res := make(Palette, len(p))
	for i, e := range entries {
		res[i] = p[e.idx]
	}
	return res
}
