package group

import "math"

// cell identifies one of the 24 half-cells P3m1 splits the unit square into:
// six columns, two rows, and the half of the cell on either side of its
// diagonal.
type cell struct {
	col, row int
	left     bool
}

// P3m1 uses an isosceles source triangle whose base is the bottom edge of
// the source rectangle and whose apex is the midpoint of its top edge. The
// triangle is part of a scaled regular hexagon with a horizontal lower edge:
// the apex sits at the hexagon's centre and the base is the hexagon's lower
// edge.
func P3m1(x, y float64) (float64, float64) {
	xx := x * 6
	col := min(5, int(math.Floor(xx)))
	xpos := xx - float64(col)
	row, ypos := 0, y*2
	if y >= 0.5 {
		row, ypos = 1, (y-0.5)*2
	}

	var left bool
	if (col+row)%2 == 0 {
		left = xpos+ypos < 1
	} else {
		left = xpos+(1-ypos) < 1
	}

	switch (cell{col, row, left}) {
	case cell{1, 1, false}, cell{4, 0, false}:
		return xpos / 2, ypos
	case cell{2, 1, true}, cell{5, 0, true}:
		return xpos/2 + 0.5, ypos
	case cell{1, 0, false}, cell{4, 1, false}:
		return xpos / 2, 1 - ypos
	case cell{2, 0, true}, cell{5, 1, true}:
		return xpos/2 + 0.5, 1 - ypos
	case cell{0, 1, false}, cell{3, 0, false}:
		return foldDescending(xpos/2, ypos)
	case cell{1, 1, true}, cell{4, 0, true}:
		return foldDescending(xpos/2+0.5, ypos)
	case cell{0, 0, false}, cell{3, 1, false}:
		return foldDescending(xpos/2, 1-ypos)
	case cell{1, 0, true}, cell{4, 1, true}:
		return foldDescending(xpos/2+0.5, 1-ypos)
	case cell{2, 1, false}, cell{5, 0, false}:
		return foldAscending(xpos/2, ypos)
	case cell{3, 1, true}, cell{0, 0, true}:
		return foldAscending(xpos/2+0.5, ypos)
	case cell{2, 0, false}, cell{5, 1, false}:
		return foldAscending(xpos/2, 1-ypos)
	case cell{3, 0, true}, cell{0, 1, true}:
		return foldAscending(xpos/2+0.5, 1-ypos)
	}
	// Only reachable from points outside the unit square.
	return 0, 0
}

// foldDescending maps a point of a half-cell onto the triangle's left slope.
func foldDescending(xp, yp float64) (float64, float64) {
	return clamp01(-xp/2 - 3*yp/4 + 1), clamp01(-xp + yp/2 + 1)
}

// foldAscending maps a point of a half-cell onto the triangle's right slope.
func foldAscending(xp, yp float64) (float64, float64) {
	return clamp01(-xp/2 + 3*yp/4 + 0.5), clamp01(xp + yp/2)
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
