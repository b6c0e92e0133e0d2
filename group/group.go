// Package group implements wallpaper-group coordinate remappers.
//
// A Func maps a normalised destination point (x, y), each in [0, 1], to a
// normalised point of the source rectangle, also in [0, 1]. The positive
// x-axis points right and the positive y-axis points down. Every function in
// Seamless yields a seamlessly tileable image from a source area with
// arbitrary contents; Pmm, P4m, P3m1 and P6m are the only four wallpaper
// groups with that property, and the functions here are their variations.
package group

import (
	"fmt"
	"sort"
)

type Func func(x, y float64) (float64, float64)

// Pmm reflects the upper-left quarter of the source rectangle into all four
// quadrants.
func Pmm(x, y float64) (float64, float64) {
	if x > 0.5 {
		x = 0.5 - (x - 0.5)
	}
	if y >= 0.5 {
		y = 0.5 - (y - 0.5)
	}
	return x * 2, y * 2
}

// P4m uses the triangle formed by the upper-left, lower-left and
// lower-right corners of Pmm's quarter (right angle at the lower left).
func P4m(x, y float64) (float64, float64) {
	rx, ry := Pmm(x, y)
	if rx+(1-ry) > 1 {
		return ry, rx
	}
	return rx, ry
}

// P4mAlt uses the triangle formed by the upper-left, upper-right and
// lower-right corners of Pmm's quarter (right angle at the upper right).
func P4mAlt(x, y float64) (float64, float64) {
	rx, ry := Pmm(x, y)
	if rx+(1-ry) < 1 {
		return ry, rx
	}
	return rx, ry
}

// P6m exposes only the left half of the P3m1 source triangle.
func P6m(x, y float64) (float64, float64) {
	rx, ry := P3m1(x, y)
	if rx > 0.5 {
		return 1 - rx, ry
	}
	return rx, ry
}

// P6mAlt exposes only the right half of the P3m1 source triangle.
func P6mAlt(x, y float64) (float64, float64) {
	rx, ry := P3m1(x, y)
	if rx < 0.5 {
		return 1 - rx, ry
	}
	return rx, ry
}

// P3m1Alt1 is P3m1 rotated so the source triangle's base is the left edge of
// the rectangle and its apex the midpoint of the right edge.
func P3m1Alt1(x, y float64) (float64, float64) {
	rx, ry := P3m1(y, 1-x)
	return 1 - ry, rx
}

// P3m1Alt2 is P3m1 reflected so the source triangle's base is the right
// edge of the rectangle and its apex the midpoint of the left edge.
func P3m1Alt2(x, y float64) (float64, float64) {
	rx, ry := P3m1(y, x)
	return ry, rx
}

func foldUpper(rx, ry float64) (float64, float64) {
	if ry > 0.5 {
		return rx, 1 - ry
	}
	return rx, ry
}

func foldLower(rx, ry float64) (float64, float64) {
	if ry < 0.5 {
		return rx, 1 - ry
	}
	return rx, ry
}

// P6mAlt1a exposes the upper half of the P3m1Alt1 triangle.
func P6mAlt1a(x, y float64) (float64, float64) { return foldUpper(P3m1Alt1(x, y)) }

// P6mAlt1b exposes the lower half of the P3m1Alt1 triangle.
func P6mAlt1b(x, y float64) (float64, float64) { return foldLower(P3m1Alt1(x, y)) }

// P6mAlt2a exposes the upper half of the P3m1Alt2 triangle.
func P6mAlt2a(x, y float64) (float64, float64) { return foldUpper(P3m1Alt2(x, y)) }

// P6mAlt2b exposes the lower half of the P3m1Alt2 triangle.
func P6mAlt2b(x, y float64) (float64, float64) { return foldLower(P3m1Alt2(x, y)) }

var registry = map[string]Func{
	"pmm":       Pmm,
	"p4m":       P4m,
	"p4m_alt":   P4mAlt,
	"p3m1":      P3m1,
	"p3m1_alt1": P3m1Alt1,
	"p3m1_alt2": P3m1Alt2,
	"p6m":       P6m,
	"p6m_alt":   P6mAlt,
	"p6m_alt1a": P6mAlt1a,
	"p6m_alt1b": P6mAlt1b,
	"p6m_alt2a": P6mAlt2a,
	"p6m_alt2b": P6mAlt2b,
}

// Seamless lists every group function guaranteed to tile seamlessly.
var Seamless = []Func{
	Pmm, P4m, P4mAlt, P3m1, P6m, P6mAlt,
	P3m1Alt1, P3m1Alt2, P6mAlt1a, P6mAlt1b, P6mAlt2a, P6mAlt2b,
}

// Lookup returns the group function registered under name.
func Lookup(name string) (Func, error) {
	if f, ok := registry[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown wallpaper group %q", name)
}

// Names returns the registered group names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
