package serve

import (
	"wpgen/raster"
	"wpgen/tile"
)

// viewer is the per-session display state: one wallpaper tiled across the
// terminal at a scroll offset.
type viewer struct {
	wall   raster.Image
	fb     *raster.Framebuffer
	ox, oy int
	step   int
	next   func() raster.Image
}

func newViewer(cols, rows, step int, next func() raster.Image) *viewer {
	v := &viewer{next: next, step: step, wall: next()}
	v.resize(cols, rows)
	return v
}

// resize matches the framebuffer to a terminal of cols by rows cells.
func (v *viewer) resize(cols, rows int) {
	v.fb = raster.NewFramebuffer(max(cols, 0), max(rows, 0)*2, nil)
}

// apply updates the state and reports whether the session should end.
func (v *viewer) apply(a action) bool {
	switch a {
	case actionUp:
		v.oy -= v.step
	case actionDown:
		v.oy += v.step
	case actionLeft:
		v.ox -= v.step
	case actionRight:
		v.ox += v.step
	case actionRegenerate:
		v.wall = v.next()
		v.ox, v.oy = 0, 0
	case actionQuit:
		return true
	}

	if w, h := v.wall.Width(), v.wall.Height(); w > 0 && h > 0 {
		v.ox, v.oy = raster.Wrap(v.ox, w), raster.Wrap(v.oy, h)
	}
	return false
}

func (v *viewer) frame() string {
	tile.CopyTiled(v.fb, v.wall, v.ox, v.oy)
	return render(v.fb)
}
