package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/parameter"
)

// fileConfig mirrors the TOML layout; pointers distinguish unset from zero
type fileConfig struct {
	Width       *int       `toml:"width"`
	Height      *int       `toml:"height"`
	Title       *string    `toml:"title"`
	FPS         *int       `toml:"fps"`
	StarCount   *int       `toml:"star_count"`
	StarMode    *string    `toml:"star_mode"`
	TrailLength *int       `toml:"trail_length"`
	Seed        *int64     `toml:"seed"`
	Sound       *bool      `toml:"sound"`
	Planets     []fileBody `toml:"planet"`
}

type fileBody struct {
	Name     string     `toml:"name"`
	Distance float64    `toml:"distance"`
	Radius   float64    `toml:"radius"`
	Color    string     `toml:"color"`
	Speed    float64    `toml:"speed"`
	Angle    *float64   `toml:"angle"`
	Moons    []fileBody `toml:"moon"`
}

// LoadFile overlays the TOML file at path onto c
// A file with any [[planet]] table replaces the whole default system
func (c *Config) LoadFile(path string) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return c.apply(fc)
}

// LoadString is LoadFile for in-memory TOML
func (c *Config) LoadString(data string) error {
	var fc fileConfig
	md, err := toml.Decode(data, &fc)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %s", ErrInvalidConfig, undecoded[0].String())
	}
	return c.apply(fc)
}

func (c *Config) apply(fc fileConfig) error {
	setIf(&c.Width, fc.Width)
	setIf(&c.Height, fc.Height)
	setIf(&c.Title, fc.Title)
	setIf(&c.FPS, fc.FPS)
	setIf(&c.StarCount, fc.StarCount)
	setIf(&c.StarMode, fc.StarMode)
	setIf(&c.TrailLength, fc.TrailLength)
	setIf(&c.Seed, fc.Seed)
	setIf(&c.Sound, fc.Sound)

	if len(fc.Planets) == 0 {
		return nil
	}
	planets := make([]parameter.BodySpec, 0, len(fc.Planets))
	for _, fb := range fc.Planets {
		spec, err := fb.spec()
		if err != nil {
			return err
		}
		planets = append(planets, spec)
	}
	c.Planets = planets
	return nil
}

func (fb fileBody) spec() (parameter.BodySpec, error) {
	color, err := ParseColor(fb.Color)
	if err != nil {
		return parameter.BodySpec{}, fmt.Errorf("%w: body %q: %v", ErrInvalidConfig, fb.Name, err)
	}
	spec := parameter.BodySpec{
		Name:     fb.Name,
		Distance: fb.Distance,
		Radius:   fb.Radius,
		Color:    color,
		Speed:    fb.Speed,
		Angle:    fb.Angle,
	}
	for _, m := range fb.Moons {
		ms, err := m.spec()
		if err != nil {
			return parameter.BodySpec{}, err
		}
		spec.Moons = append(spec.Moons, ms)
	}
	return spec, nil
}

// ParseColor decodes "#rrggbb" (or "#rgb") into channels; empty means white
func ParseColor(s string) ([3]uint8, error) {
	if s == "" {
		return parameter.ColorLabel, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) == 4 {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return [3]uint8{}, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return [3]uint8{r, g, b}, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
