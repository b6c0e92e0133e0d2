package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"wpgen/generate"
	"wpgen/mangle"
	"wpgen/palette"
	"wpgen/parallel"
	"wpgen/serve"
)

type CLI struct {
	LogLevel string `help:"Minimum level of log messages" enum:"debug,info,warn,error" default:"info"`
	Workers  int    `help:"Number of parallel workers, one per CPU if 0" default:"0"`

	Generate generate.CLICmd `cmd:"" help:"Generate random tileable wallpapers"`
	Mangle   mangle.CLICmd   `cmd:"" help:"Rework pictures into seamless, dithered tiles"`
	Palette  palette.CLICmd  `cmd:"" help:"List and export palettes"`
	Serve    serve.CLICmd    `cmd:"" help:"Show tiled wallpapers to SSH clients"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("wpgen"),
		kong.Description("Procedural tileable wallpaper generator"),
		kong.UsageOnError(),
	)

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		kctx.FatalIfErrorf(err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	pool := parallel.Start(cli.Workers)
	slog.Debug("worker pool started", "workers", pool.Workers)

	err := kctx.Run(pool.Do, pool.Wait)
	pool.Cancel()
	kctx.FatalIfErrorf(err)
}
