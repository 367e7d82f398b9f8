package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tigleym/ray-tracer/convert"
	"github.com/tigleym/ray-tracer/output"
	"github.com/tigleym/ray-tracer/parallel"
	"github.com/tigleym/ray-tracer/projectile"
	"github.com/tigleym/ray-tracer/swatch"
)

type cli struct {
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"info"`
	Workers  int    `help:"Number of parallel encoders, GOMAXPROCS if less than 1" default:"0"`

	Swatch     swatch.CLICmd     `cmd:"" help:"Fill a canvas with one color"`
	Projectile projectile.CLICmd `cmd:"" help:"Fire a projectile and plot its trajectory"`
	Convert    convert.CLICmd    `cmd:"" help:"Load an image into a canvas and write it out again"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("ray-tracer"),
		kong.Description("Render canvases to plain-text PPM and other image formats."),
		kong.UsageOnError(),
		kong.Vars{"formats": output.Formats},
	)

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		kctx.FatalIfErrorf(err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	pool := parallel.Start(c.Workers)
	slog.Debug("running", "command", kctx.Command(), "workers", c.Workers)

	kctx.FatalIfErrorf(kctx.Run(pool.Do, pool.Wait))
}
