// Package projectile fires a projectile through a simple environment and
// plots where it goes.
package projectile

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/tigleym/ray-tracer/canvas"
	"github.com/tigleym/ray-tracer/tuple"
)

// ErrNoLanding indicates a projectile still airborne after the tick limit.
var ErrNoLanding = errors.New("projectile: did not land")

type Projectile struct {
	Position tuple.Point
	Velocity tuple.Vector
}

type Environment struct {
	Gravity tuple.Vector
	Wind    tuple.Vector
}

// Tick advances p by one time step.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Fire ticks p until it reaches the ground (Y <= 0) and returns every
// airborne position, starting with the initial one.
func Fire(env Environment, p Projectile, maxTicks int) ([]tuple.Point, error) {
	var path []tuple.Point
	for ticks := 0; p.Position.Y > 0; ticks++ {
		if ticks >= maxTicks {
			return path, fmt.Errorf("%w after %d ticks", ErrNoLanding, ticks)
		}
		slog.Debug("tick", "n", ticks, "x", p.Position.X, "y", p.Position.Y, "z", p.Position.Z)
		path = append(path, p.Position)
		p = Tick(env, p)
	}

	slog.Info("landed", "ticks", len(path), "x", p.Position.X)
	return path, nil
}

// Plot marks every point of path on c, with Y growing upwards from the
// bottom row. Points that fall outside the canvas are skipped; the number
// of plotted points is returned.
func Plot(c *canvas.Canvas, path []tuple.Point, col tuple.Color) int {
	var plotted int
	for _, pt := range path {
		x := int(math.Round(pt.X))
		y := c.Height() - int(math.Round(pt.Y))
		if err := c.WritePixel(x, y, col); err != nil {
			slog.Debug("point off canvas", "x", x, "y", y)
			continue
		}
		plotted++
	}
	return plotted
}
