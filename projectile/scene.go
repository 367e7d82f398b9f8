package projectile

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/tigleym/ray-tracer/tuple"
)

// Scene describes one projectile plot.
type Scene struct {
	Canvas      CanvasConfig      `yaml:"canvas"`
	Projectile  ProjectileConfig  `yaml:"projectile"`
	Environment EnvironmentConfig `yaml:"environment"`
	Color       []float64         `yaml:"color"`
	MaxTicks    int               `yaml:"max_ticks"`
}

type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ProjectileConfig gives the launch point and the initial velocity as a
// direction, normalized on load, times a speed.
type ProjectileConfig struct {
	Start     []float64 `yaml:"start"`
	Direction []float64 `yaml:"direction"`
	Speed     float64   `yaml:"speed"`
}

type EnvironmentConfig struct {
	Gravity []float64 `yaml:"gravity"`
	Wind    []float64 `yaml:"wind"`
}

// Default values for optional scene fields.
const (
	DefaultWidth    = 900
	DefaultHeight   = 550
	DefaultSpeed    = 11.25
	DefaultMaxTicks = 10000
)

var (
	DefaultStart     = []float64{0, 1, 0}
	DefaultDirection = []float64{1, 1.8, 0}
	DefaultGravity   = []float64{0, -0.1, 0}
	DefaultWind      = []float64{-0.01, 0, 0}
	DefaultColor     = []float64{1, 0.8, 0.6}
)

// DefaultScene returns the scene used when no file is given.
func DefaultScene() *Scene {
	s := &Scene{}
	s.applyDefaults()
	return s
}

// LoadScene reads and parses a scene from the specified file path. Missing
// fields take their default values.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}

	s.applyDefaults()

	if err := s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Scene) applyDefaults() {
	if s.Canvas.Width == 0 {
		s.Canvas.Width = DefaultWidth
	}
	if s.Canvas.Height == 0 {
		s.Canvas.Height = DefaultHeight
	}
	if s.Projectile.Start == nil {
		s.Projectile.Start = slices.Clone(DefaultStart)
	}
	if s.Projectile.Direction == nil {
		s.Projectile.Direction = slices.Clone(DefaultDirection)
	}
	if s.Projectile.Speed == 0 {
		s.Projectile.Speed = DefaultSpeed
	}
	if s.Environment.Gravity == nil {
		s.Environment.Gravity = slices.Clone(DefaultGravity)
	}
	if s.Environment.Wind == nil {
		s.Environment.Wind = slices.Clone(DefaultWind)
	}
	if s.Color == nil {
		s.Color = slices.Clone(DefaultColor)
	}
	if s.MaxTicks == 0 {
		s.MaxTicks = DefaultMaxTicks
	}
}

func (s *Scene) validate() error {
	triples := []struct {
		name string
		v    []float64
	}{
		{"projectile.start", s.Projectile.Start},
		{"projectile.direction", s.Projectile.Direction},
		{"environment.gravity", s.Environment.Gravity},
		{"environment.wind", s.Environment.Wind},
		{"color", s.Color},
	}
	for _, tr := range triples {
		if len(tr.v) != 3 {
			return fmt.Errorf("%s must have 3 components, got %d", tr.name, len(tr.v))
		}
	}

	if s.Canvas.Width < 0 || s.Canvas.Height < 0 {
		return fmt.Errorf("invalid canvas size %dx%d", s.Canvas.Width, s.Canvas.Height)
	}
	if s.MaxTicks < 0 {
		return errors.New("max_ticks must not be negative")
	}
	return nil
}

// Launch returns the launch state described by the scene.
func (s *Scene) Launch() Projectile {
	p, d := s.Projectile.Start, s.Projectile.Direction
	return Projectile{
		Position: tuple.NewPoint(p[0], p[1], p[2]),
		Velocity: tuple.NewVector(d[0], d[1], d[2]).Normalize().Scale(s.Projectile.Speed),
	}
}

func (s *Scene) Env() Environment {
	g, w := s.Environment.Gravity, s.Environment.Wind
	return Environment{
		Gravity: tuple.NewVector(g[0], g[1], g[2]),
		Wind:    tuple.NewVector(w[0], w[1], w[2]),
	}
}

func (s *Scene) PathColor() tuple.Color {
	return tuple.Color{R: s.Color[0], G: s.Color[1], B: s.Color[2]}
}
