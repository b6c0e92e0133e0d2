package mangle

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"wpgen/dither"
	"wpgen/encode"
	"wpgen/group"
	"wpgen/palette"
	"wpgen/parallel"
	"wpgen/random"
	"wpgen/raster"
)

type CLICmd struct {
	Scan       string  `help:"Source folder to scan" default:"."`
	Dest       string  `help:"Destination folder for processed pictures. Relative to scan dir if not absolute. If same as scan dir, will overwrite source files." default:"mangled"`
	Resize     bool    `help:"Resize image" default:"false" group:"resize"`
	Width      int     `help:"Max width" group:"resize"`
	Height     int     `help:"Max height" group:"resize"`
	Crop       bool    `help:"Crop image to maintain requested aspect ration" default:"false" group:"resize"`
	Fill       string  `help:"If given and not cropping, will fill background with this color (#RGB or #RRGGBB) to maintain destination aspect ratio" group:"resize"`
	Blur       float32 `help:"Gaussian blur sigma applied before tiling" default:"0" group:"tile"`
	Group      string  `help:"Wallpaper group to recompose the picture through, or 'random'" group:"tile"`
	TileWidth  int     `help:"Width of the recomposed tile, source width if 0" group:"tile"`
	TileHeight int     `help:"Height of the recomposed tile, source height if 0" group:"tile"`
	Seed       uint64  `help:"Seed for random group choice; 0 picks a random one" default:"0" group:"tile"`
	Dither     string  `help:"Dithering mode (websafe, websafe-vga, floyd, atkinson, stucki, sierra-lite, clustered)" group:"palette"`
	Palette    string  `help:"Palette name (bw, grayN, classic, vga16, cga16, ega64, windows20, websafe, websafe-vga) or .pal, .gpl or .hex file for palette based dithering" default:"classic" group:"palette"`
	Format     string  `help:"Output format of mangled image" enum:"png,gif,jpeg,bmp,tiff,ppm,pcx" default:"png"`

	fill    *raster.RGB
	groupFn group.Func
	pal     palette.Palette
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if c.Resize {
		switch {
		case (c.Width < 0):
			return fmt.Errorf("invalid resize width: %d", c.Width)
		case (c.Height < 0):
			return fmt.Errorf("invalid resize height: %d", c.Height)
		case (c.Width == 0) && (c.Height == 0):
			return fmt.Errorf("no resize dimensions given")
		}
	}

	if (!c.Crop) && (c.Fill != "") {
		fill, err := palette.ParseHex(c.Fill)
		if err != nil {
			return fmt.Errorf("invalid fill color: %w", err)
		}
		c.fill = &fill
	}

	if c.Blur < 0 {
		return fmt.Errorf("invalid blur sigma: %v", c.Blur)
	}

	if c.TileWidth < 0 || c.TileHeight < 0 {
		return fmt.Errorf("invalid tile size %dx%d", c.TileWidth, c.TileHeight)
	}

	switch c.Group {
	case "":
	case "random":
		if c.Seed == 0 {
			c.Seed = random.Seed()
		}
	default:
		if c.groupFn, err = group.Lookup(c.Group); err != nil {
			return err
		}
	}

	if c.Dither != "" {
		found := false
		for _, m := range dither.Modes {
			found = found || dither.Mode(c.Dither) == m
		}
		if !found {
			return fmt.Errorf("unknown dither mode %q", c.Dither)
		}

		if c.pal, err = palette.LoadPalette(c.Palette); err != nil {
			return err
		}
	}

	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var stats parallel.Stats
	for i, file := range files {
		if file.IsDir() {
			continue
		}

		worker(func() {
			filePath := filepath.Join(c.Scan, file.Name())
			logger := slog.Default().With("file", filePath)

			if err := c.process(logger, filePath, i); err != nil {
				stats.Failed()
				logger.Error("could not mangle image", "error", err)
				return
			}
			stats.Done()
		})
	}

	wait(true)

	return stats.Report("files")
}

func (c *CLICmd) process(logger *slog.Logger, filePath string, idx int) error {
	imgFile, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("could not open image: %w", err)
	}

	src, _, err := image.Decode(imgFile)
	imgFile.Close()
	if err != nil {
		return fmt.Errorf("could not decode image: %w", err)
	}

	if c.Resize {
		src = resize(logger, src, c.Width, c.Height, c.Crop, c.fill)
	}
	if c.Blur > 0 {
		src = blur(src, c.Blur)
	}

	var img raster.Image = raster.FromImage(src)
	if fn := c.pickGroup(idx); fn != nil {
		img = recompose(logger, img, c.TileWidth, c.TileHeight, fn)
	}

	if c.Dither != "" {
		logger.Info("dithering", "mode", c.Dither, "colors", len(c.pal))
		if err = dither.Apply(img, dither.Mode(c.Dither), c.pal); err != nil {
			return err
		}
	}

	base := filepath.Base(filePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if _, err = encode.Save(img, c.Format, c.Dest, name); err != nil {
		return fmt.Errorf("could not save image to %q: %w", c.Dest, err)
	}
	return nil
}

// pickGroup picks the recomposition group for the idx-th file. Random picks
// depend only on the seed and the file's position.
func (c *CLICmd) pickGroup(idx int) group.Func {
	if c.Group != "random" {
		return c.groupFn
	}
	rng := random.NewPCG(c.Seed + uint64(idx))
	return group.Seamless[rng.UniformInt(0, len(group.Seamless)-1)]
}
