package projectile

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/tigleym/ray-tracer/canvas"
	"github.com/tigleym/ray-tracer/output"
	"github.com/tigleym/ray-tracer/parallel"
)

type CLICmd struct {
	Scene string `help:"YAML scene file; built-in defaults when empty" type:"existingfile"`
	output.Options

	scene *Scene
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if err := c.Options.Validate(); err != nil {
		return err
	}

	if c.Scene == "" {
		c.scene = DefaultScene()
		return nil
	}

	var err error
	if c.scene, err = LoadScene(c.Scene); err != nil {
		return fmt.Errorf("invalid scene %q: %w", c.Scene, err)
	}
	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if c.scene == nil {
		c.scene = DefaultScene()
	}
	logger := slog.Default().With("scene", c.Scene)

	cv, err := canvas.New(c.scene.Canvas.Width, c.scene.Canvas.Height)
	if err != nil {
		return err
	}

	path, err := Fire(c.scene.Env(), c.scene.Launch(), c.scene.MaxTicks)
	if err != nil {
		return err
	}

	plotted := Plot(cv, path, c.scene.PathColor())
	logger.Info("plotted", "points", plotted, "skipped", len(path)-plotted)

	return output.Save(worker, wait, cv, c.Options)
}
