package raster

// Wrap returns a modulo n in [0, n), treating negative a as wrapping from
// the far edge: Wrap(-1, 4) == 3, unlike the truncating -1 % 4 == -1.
// n must be positive.
func Wrap(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
