package palette

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadPalette resolves name to a built-in palette or, when it carries a .pal,
// .gpl or .hex extension, reads it from that file. A RIFF file holding several
// palettes yields the first.
func LoadPalette(name string) (Palette, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".pal", ".gpl", ".hex":
	default:
		return Builtin(name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open palette %q: %w", name, err)
	}
	defer f.Close()

	var pal Palette
	switch ext {
	case ".pal":
		var pals []Palette
		if pals, err = ReadRIFF(f); err == nil && len(pals) == 0 {
			err = fmt.Errorf("no palette chunk")
		} else if err == nil {
			pal = pals[0]
		}
	case ".gpl":
		pal, err = ReadGPL(f)
	case ".hex":
		pal, err = ReadHex(f)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read palette %q: %w", name, err)
	}
	if len(pal) == 0 {
		return nil, fmt.Errorf("palette %q is empty", name)
	}

	return pal, nil
}
