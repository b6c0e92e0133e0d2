package palette

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"wpgen/raster"
)

func TestIndex(t *testing.T) {
	pal := Palette{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}, {10, 0, 0}}
	tests := []struct {
		name string
		c    raster.RGB
		want int
	}{
		{"exact first", raster.RGB{}, 0},
		{"exact duplicate returns first", raster.RGB{R: 10}, 1},
		{"tie prefers earlier", raster.RGB{R: 5, G: 5}, 0},
		{"nearest", raster.RGB{G: 9}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pal.Index(tt.c); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}

	if got := Palette(nil).Index(raster.RGB{R: 1}); got != 0 {
		t.Errorf("empty palette: expected 0, got %d", got)
	}
	if got := Classic.Convert(raster.RGB{R: 250, G: 10, B: 5}); got != (raster.RGB{R: 255}) {
		t.Errorf("expected red, got %v", got)
	}
}

func TestBuiltins(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"bw", 2},
		{"classic", 16},
		{"vga16", 16},
		{"cga16", 16},
		{"ega64", 64},
		{"windows20", 20},
		{"websafe", 216},
		{"websafe-vga", 224},
		{"gray16", 16},
		{"GRAY256", 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pal, err := Builtin(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			if len(pal) != tt.size {
				t.Errorf("expected %d colors, got %d", tt.size, len(pal))
			}
		})
	}

	for _, name := range []string{"gray1", "gray257", "grayx", "nope"} {
		if _, err := Builtin(name); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	pal, _ := Builtin("classic")
	pal[0] = raster.RGB{R: 1}
	if Classic[0] != (raster.RGB{}) {
		t.Error("Builtin must return a copy")
	}
}

func TestWebSafeLevels(t *testing.T) {
	for _, c := range WebSafe {
		for _, v := range []uint8{c.R, c.G, c.B} {
			if v%51 != 0 {
				t.Fatalf("%v is not web-safe", c)
			}
		}
	}
	if WebSafe[1] != (raster.RGB{B: 51}) || WebSafe[6] != (raster.RGB{G: 51}) || WebSafe[36] != (raster.RGB{R: 51}) {
		t.Error("expected red-major ordering")
	}
	for _, c := range Classic {
		if !WebSafeVGA.Contains(c) {
			t.Errorf("%v missing from websafe-vga", c)
		}
	}
}

func TestGrays(t *testing.T) {
	g := Grays(4)
	want := []uint8{0, 85, 170, 255}
	for i, c := range g {
		if c.R != want[i] || c.G != want[i] || c.B != want[i] {
			t.Errorf("entry %d: expected %d, got %v", i, want[i], c)
		}
	}
	if len(Grays(0)) != 2 {
		t.Error("expected at least two grays")
	}
}

func TestRIFFRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteRIFF(&buf, Classic, CGA)
	if err != nil {
		t.Fatal(err)
	}
	if n != 32 {
		t.Errorf("expected 32 colors written, got %d", n)
	}
	if got := buf.Len(); got != 8+4+2*(12+16*4) {
		t.Errorf("unexpected stream size %d", got)
	}

	pals, err := ReadRIFF(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(pals) != 2 || !slices.Equal(pals[0], Classic) || !slices.Equal(pals[1], CGA) {
		t.Errorf("round trip mismatch: %v", pals)
	}
}

func TestRIFFErrors(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteRIFF(&buf, Classic); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	bad := slices.Clone(data)
	copy(bad[8:], "WAVE")
	if _, err := ReadRIFF(bytes.NewReader(bad)); err == nil {
		t.Error("expected content type error")
	}

	bad = slices.Clone(data)
	bad[21] = 0x04
	if _, err := ReadRIFF(bytes.NewReader(bad)); err == nil {
		t.Error("expected version error")
	}
}

func TestGPLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGPL(&buf, "windows", Windows20); err != nil {
		t.Fatal(err)
	}
	text := buf.String()
	if !strings.HasPrefix(text, "GIMP Palette\nName: windows\n") {
		t.Errorf("unexpected header %q", text[:min(len(text), 40)])
	}
	if !strings.Contains(text, "192 220 192\t#c0dcc0\n") {
		t.Error("expected hex-named entry")
	}

	pal, err := ReadGPL(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(pal, Windows20) {
		t.Errorf("round trip mismatch: %v", pal)
	}

	for _, in := range []string{"", "JASC-PAL\n", "GIMP Palette\n1 2\n", "GIMP Palette\n1 2 300\n"} {
		if _, err := ReadGPL(strings.NewReader(in)); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(raster.RGB{R: 255, G: 128, B: 1}); got != "#ff8001" {
		t.Errorf("unexpected hex %q", got)
	}

	pal, err := ReadHex(strings.NewReader("; lospec\nff0000\n#00ff00\n\n00f\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := Palette{{R: 255}, {G: 255}, {B: 255}}
	if !slices.Equal(pal, want) {
		t.Errorf("expected %v, got %v", want, pal)
	}

	if _, err := ReadHex(strings.NewReader("zzzzzz\n")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadPalette(t *testing.T) {
	dir := t.TempDir()
	gpl := filepath.Join(dir, "cga.gpl")
	f, err := os.Create(gpl)
	if err != nil {
		t.Fatal(err)
	}
	if err = WriteGPL(f, "cga", CGA); err != nil {
		t.Fatal(err)
	}
	f.Close()

	pal, err := LoadPalette(gpl)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(pal, CGA) {
		t.Error("loaded palette differs")
	}

	if pal, err = LoadPalette("ega64"); err != nil || len(pal) != 64 {
		t.Errorf("builtin: %d colors, %v", len(pal), err)
	}
	if _, err = LoadPalette(filepath.Join(dir, "missing.pal")); err == nil {
		t.Error("expected missing file error")
	}

	empty := filepath.Join(dir, "empty.hex")
	if err = os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err = LoadPalette(empty); err == nil {
		t.Error("expected empty palette error")
	}
}

func TestSortByLightness(t *testing.T) {
	sorted := SortByLightness(Classic)
	if sorted[0] != (raster.RGB{}) || sorted[len(sorted)-1] != (raster.RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("expected black to white, got %v", sorted)
	}
	if len(sorted) != len(Classic) || Classic[1] != (raster.RGB{R: 128, G: 128, B: 128}) {
		t.Error("source must be left untouched")
	}
	for _, c := range Classic {
		if !sorted.Contains(c) {
			t.Errorf("%v lost", c)
		}
	}
}

func TestListCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := ListCmd{Colors: true}
	if err := cmd.print(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "websafe-vga") || !strings.Contains(out, "#c0c0c0") {
		t.Errorf("unexpected listing:\n%s", out)
	}
}

func TestExportCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "vga.pal")
	cmd := ExportCmd{Name: "vga16", Output: out, Sort: true, Format: "auto"}
	if err := cmd.Validate(nil); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}

	pal, err := LoadPalette(out)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(pal, SortByLightness(Classic)) {
		t.Errorf("unexpected exported palette %v", pal)
	}

	bad := ExportCmd{Name: "vga16", Output: "x.txt", Format: "auto"}
	if err := bad.Validate(nil); err == nil {
		t.Error("expected format error")
	}
}
