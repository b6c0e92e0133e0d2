package generate

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"wpgen/encode"
	"wpgen/parallel"
	"wpgen/random"
	"wpgen/raster"
	"wpgen/scene"
)

type CLICmd struct {
	Count  int    `help:"Number of wallpapers to generate" default:"1"`
	Dest   string `help:"Destination folder" default:"." type:"path"`
	Format string `help:"Output format" enum:"png,gif,jpeg,bmp,tiff,ppm,pcx" default:"png"`
	Prefix string `help:"File name prefix, followed by the wallpaper number" default:"wallpaper"`
	Seed   uint64 `help:"Seed for reproducible output; 0 picks a random one" default:"0"`
	Dice   bool   `help:"Draw randomness from the system entropy source with a fast dice roller instead of a seeded PRNG" default:"false"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Count < 1 {
		return fmt.Errorf("invalid count: %d", c.Count)
	}

	dest, err := filepath.Abs(c.Dest)
	if err != nil {
		return fmt.Errorf("invalid destination %q: %w", c.Dest, err)
	}
	c.Dest = dest

	if c.Dice && c.Seed != 0 {
		return fmt.Errorf("--seed cannot be combined with --dice")
	}
	if c.Seed == 0 && !c.Dice {
		c.Seed = random.Seed()
	}

	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	if !c.Dice {
		slog.Info("generating", "count", c.Count, "seed", c.Seed)
	}

	var stats parallel.Stats
	for i := range c.Count {
		worker(func() {
			name := fmt.Sprintf("%s%d", c.Prefix, i)
			logger := slog.Default().With("wallpaper", name)

			img, err := c.wallpaper(i)
			if err != nil {
				stats.Failed()
				logger.Error("could not generate wallpaper", "error", err)
				return
			}

			path, err := encode.Save(img, c.Format, c.Dest, name)
			if err != nil {
				stats.Failed()
				logger.Error("could not save wallpaper", "dir", c.Dest, "error", err)
				return
			}

			logger.Debug("saved", "file", path, "width", img.Width(), "height", img.Height())
			stats.Done()
		})
	}

	wait(true)

	return stats.Report("wallpapers")
}

// wallpaper draws wallpaper i. Seeded runs give every index its own stream
// so the result does not depend on scheduling.
func (c *CLICmd) wallpaper(i int) (*raster.Buffer, error) {
	if !c.Dice {
		return scene.Generate(random.NewPCG(c.Seed + uint64(i))), nil
	}

	rng := random.NewDiceRoller(rand.Reader)
	img := scene.Generate(rng)
	if err := rng.Err(); err != nil {
		return nil, fmt.Errorf("could not read random bits: %w", err)
	}
	return img, nil
}
