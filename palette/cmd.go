package palette

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	List   ListCmd   `cmd:"" help:"List built-in palettes"`
	Export ExportCmd `cmd:"" help:"Write a palette to a file"`
}

type ListCmd struct {
	Colors bool `help:"Print every color as well" short:"c"`
}

func (c *ListCmd) Run() error {
	return c.print(os.Stdout)
}

func (c *ListCmd) print(w io.Writer) error {
	for _, name := range BuiltinNames() {
		pal, err := Builtin(name)
		if err != nil {
			return err
		}

		if _, err = fmt.Fprintf(w, "%-12s %3d colors\n", name, len(pal)); err != nil {
			return err
		}
		if !c.Colors {
			continue
		}

		hex := make([]string, len(pal))
		for i, col := range pal {
			hex[i] = Hex(col)
		}
		for len(hex) > 0 {
			n := min(len(hex), 8)
			if _, err = fmt.Fprintf(w, "  %s\n", strings.Join(hex[:n], " ")); err != nil {
				return err
			}
			hex = hex[n:]
		}
	}
	return nil
}

type ExportCmd struct {
	Name   string `arg:"" help:"Palette name or file to convert"`
	Output string `arg:"" help:"Destination file; the extension (.pal, .gpl) selects the format" type:"path"`
	Sort   bool   `help:"Order colors by perceived lightness" default:"false"`
	Format string `help:"Force output format" enum:"auto,pal,gpl" default:"auto"`

	pal Palette
}

func (c *ExportCmd) Validate(kctx *kong.Context) error {
	if c.Format == "auto" {
		c.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(c.Output)), ".")
		if c.Format != "pal" && c.Format != "gpl" {
			return fmt.Errorf("cannot infer palette format from %q", c.Output)
		}
	}

	var err error
	if c.pal, err = LoadPalette(c.Name); err != nil {
		return err
	}

	return nil
}

func (c *ExportCmd) Run() error {
	pal := c.pal
	if c.Sort {
		pal = SortByLightness(pal)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", c.Output, err)
	}

	name := strings.TrimSuffix(filepath.Base(c.Name), filepath.Ext(c.Name))
	switch c.Format {
	case "pal":
		_, err = WriteRIFF(f, pal)
	case "gpl":
		err = WriteGPL(f, name, pal)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("could not write %q: %w", c.Output, err)
	}

	return nil
}
