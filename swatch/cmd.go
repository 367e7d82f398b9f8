// Package swatch renders a canvas filled with a single color.
package swatch

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tigleym/ray-tracer/canvas"
	"github.com/tigleym/ray-tracer/output"
	"github.com/tigleym/ray-tracer/parallel"
	"github.com/tigleym/ray-tracer/tuple"
)

type CLICmd struct {
	Width  int       `help:"Canvas width" default:"10" group:"canvas"`
	Height int       `help:"Canvas height" default:"2" group:"canvas"`
	Color  []float64 `help:"Linear r,g,b sample written to every pixel" default:"1.0,0.8,0.6" sep:"," group:"canvas"`
	Stdout bool      `help:"Print the PPM to standard output instead of writing files" default:"false"`
	output.Options

	stdout io.Writer
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("invalid width: %d", c.Width)
	case c.Height <= 0:
		return fmt.Errorf("invalid height: %d", c.Height)
	case len(c.Color) != 3:
		return fmt.Errorf("color needs 3 components, got %d", len(c.Color))
	}
	if c.Stdout {
		return nil
	}
	return c.Options.Validate()
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	cv, err := Render(c.Width, c.Height, tuple.Color{R: c.Color[0], G: c.Color[1], B: c.Color[2]})
	if err != nil {
		return err
	}
	slog.Info("rendered swatch", "width", c.Width, "height", c.Height, "color", c.Color)

	if c.Stdout {
		w := c.stdout
		if w == nil {
			w = os.Stdout
		}
		if _, err := io.WriteString(w, cv.ToPPM()); err != nil {
			return fmt.Errorf("could not write PPM to standard output: %w", err)
		}
		return nil
	}
	return output.Save(worker, wait, cv, c.Options)
}

// Render returns a width by height canvas with every pixel set to col.
func Render(width, height int, col tuple.Color) (*canvas.Canvas, error) {
	cv, err := canvas.New(width, height)
	if err != nil {
		return nil, err
	}
	cv.Fill(col)
	return cv, nil
}
