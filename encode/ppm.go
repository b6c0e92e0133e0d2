package encode

import (
	"fmt"
	"io"

	"wpgen/raster"
)

// writePPM writes a binary (P6) portable pixmap.
func writePPM(w io.Writer, img raster.Image) error {
	width, height := img.Width(), img.Height()
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	row := make([]byte, width*3)
	for y := range height {
		for x := range width {
			c := img.RGBAt(x, y)
			row[x*3], row[x*3+1], row[x*3+2] = c.R, c.G, c.B
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
