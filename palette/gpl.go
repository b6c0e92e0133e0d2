package palette

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"wpgen/raster"
)

const gplMagic = "GIMP Palette"

// Hex formats c as #rrggbb.
func Hex(c raster.RGB) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// ParseHex reads a #rrggbb or #rgb colour.
func ParseHex(s string) (raster.RGB, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return raster.RGB{}, fmt.Errorf("could not parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return raster.RGB{R: r, G: g, B: b}, nil
}

// ReadGPL reads a GIMP palette. The name, column hint and comments are
// skipped; the name of each colour is ignored.
func ReadGPL(r io.Reader) (Palette, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() || strings.TrimSpace(sc.Text()) != gplMagic {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("could not read header: %w", err)
		}
		return nil, fmt.Errorf("missing %q header", gplMagic)
	}

	var res Palette
	for line := 2; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") ||
			strings.HasPrefix(text, "Name:") || strings.HasPrefix(text, "Columns:") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 3 {
			return res, fmt.Errorf("line %d: expected three channels, got %q", line, text)
		}

		var ch [3]uint8
		for i := range ch {
			v, err := strconv.ParseUint(fields[i], 10, 8)
			if err != nil {
				return res, fmt.Errorf("line %d: could not parse channel %q: %w", line, fields[i], err)
			}
			ch[i] = uint8(v)
		}
		res = append(res, raster.RGB{R: ch[0], G: ch[1], B: ch[2]})
	}

	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("could not read palette: %w", err)
	}

	return res, nil
}

// WriteGPL writes pal as a GIMP palette, naming each entry by its hex code.
func WriteGPL(w io.Writer, name string, pal Palette) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\nName: %s\nColumns: 16\n# Colors: %d\n", gplMagic, name, len(pal))
	for _, c := range pal {
		fmt.Fprintf(bw, "%3d %3d %3d\t%s\n", c.R, c.G, c.B, Hex(c))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not write palette %s: %w", name, err)
	}

	return nil
}

// ReadHex reads one rrggbb colour per line, as published by Lospec.
func ReadHex(r io.Reader) (Palette, error) {
	sc := bufio.NewScanner(r)

	var res Palette
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, ";") {
			continue
		}

		c, err := ParseHex(text)
		if err != nil {
			return res, err
		}
		res = append(res, c)
	}

	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("could not read palette: %w", err)
	}

	return res, nil
}
