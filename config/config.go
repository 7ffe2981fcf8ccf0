// Package config resolves the simulation settings from built-in defaults,
// an optional TOML file and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/orrery/parameter"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Display backends
const (
	DisplayAuto     = "auto"
	DisplayTerminal = "terminal"
	DisplayWindow   = "window"
)

// Color modes for the terminal backend
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config holds every tunable of one run
type Config struct {
	Width  int
	Height int
	Title  string

	FPS         int
	StarCount   int
	StarMode    string
	TrailLength int

	// Seed drives planet phases and star noise; 0 selects a time-based seed
	Seed int64

	Sound     bool
	Display   string
	ColorMode string
	Debug     bool

	Planets []parameter.BodySpec
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Width:       parameter.SceneWidth,
		Height:      parameter.SceneHeight,
		Title:       parameter.SceneTitle,
		FPS:         parameter.FrameRate,
		StarCount:   parameter.StarCount,
		StarMode:    parameter.StarModeFlicker,
		TrailLength: parameter.TrailLength,
		Display:     DisplayWindow,
		ColorMode:   ColorAuto,
		Planets:     clonePlanets(parameter.DefaultPlanets),
	}
}

// Validate checks ranges and enumerations, returning the first violation
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: scene size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalidConfig, c.FPS)
	case c.StarCount < 0:
		return fmt.Errorf("%w: star_count %d must not be negative", ErrInvalidConfig, c.StarCount)
	case c.TrailLength < 0:
		return fmt.Errorf("%w: trail_length %d must not be negative", ErrInvalidConfig, c.TrailLength)
	}

	switch c.StarMode {
	case parameter.StarModeFlicker, parameter.StarModeFixed:
	default:
		return fmt.Errorf("%w: star_mode %q, want %q or %q", ErrInvalidConfig, c.StarMode, parameter.StarModeFlicker, parameter.StarModeFixed)
	}

	switch c.Display {
	case DisplayAuto, DisplayTerminal, DisplayWindow:
	default:
		return fmt.Errorf("%w: display %q", ErrInvalidConfig, c.Display)
	}

	switch c.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%w: color %q", ErrInvalidConfig, c.ColorMode)
	}

	for i, p := range c.Planets {
		if err := validateBody(p, fmt.Sprintf("planet[%d]", i)); err != nil {
			return err
		}
		for j, m := range p.Moons {
			if err := validateBody(m, fmt.Sprintf("planet[%d].moon[%d]", i, j)); err != nil {
				return err
			}
			if len(m.Moons) > 0 {
				return fmt.Errorf("%w: %s.moon[%d]: moons cannot have moons", ErrInvalidConfig, fmt.Sprintf("planet[%d]", i), j)
			}
		}
	}
	return nil
}

func validateBody(b parameter.BodySpec, where string) error {
	switch {
	case b.Name == "":
		return fmt.Errorf("%w: %s: name is required", ErrInvalidConfig, where)
	case b.Distance < 0:
		return fmt.Errorf("%w: %s (%s): distance %g must not be negative", ErrInvalidConfig, where, b.Name, b.Distance)
	case b.Radius < 0:
		return fmt.Errorf("%w: %s (%s): radius %g must not be negative", ErrInvalidConfig, where, b.Name, b.Radius)
	case math.IsNaN(b.Speed) || math.IsInf(b.Speed, 0):
		return fmt.Errorf("%w: %s (%s): speed must be finite", ErrInvalidConfig, where, b.Name)
	}
	return nil
}

func clonePlanets(src []parameter.BodySpec) []parameter.BodySpec {
	out := make([]parameter.BodySpec, len(src))
	for i, p := range src {
		out[i] = p
		if p.Moons != nil {
			out[i].Moons = clonePlanets(p.Moons)
		}
	}
	return out
}
