package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/orrery/parameter"
)

// flagValues holds raw command-line values before overlay
type flagValues struct {
	configPath string
	display    string
	color      string
	stars      string
	fps        int
	seed       int64
	sound      bool
	debug      bool
}

// Parse resolves a Config from command-line args (without the program name)
// Precedence: defaults < TOML file (-config) < explicitly set flags
func Parse(name string, args []string, output io.Writer) (Config, error) {
	var fv flagValues
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&fv.configPath, "config", "", "TOML file with scene and planet overrides")
	fs.StringVar(&fv.display, "display", DisplayWindow, "Display: window, terminal, auto (terminal when stdout is a TTY)")
	fs.StringVar(&fv.color, "color", ColorAuto, "Terminal color mode: auto, truecolor, 256")
	fs.StringVar(&fv.stars, "stars", parameter.StarModeFlicker, "Star field: flicker, fixed")
	fs.IntVar(&fv.fps, "fps", parameter.FrameRate, "Frame rate cap")
	fs.Int64Var(&fv.seed, "seed", 0, "Random seed, 0 for time-based")
	fs.BoolVar(&fv.sound, "sound", false, "Chime when a planet completes an orbit")
	fs.BoolVar(&fv.debug, "debug", false, "Write debug log to logs/")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidConfig, fs.Args())
	}

	cfg := Default()
	if fv.configPath != "" {
		if err := cfg.LoadFile(fv.configPath); err != nil {
			return Config{}, err
		}
	}

	// Only flags present on the command line override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "display":
			cfg.Display = fv.display
		case "color":
			cfg.ColorMode = fv.color
		case "stars":
			cfg.StarMode = fv.stars
		case "fps":
			cfg.FPS = fv.fps
		case "seed":
			cfg.Seed = fv.seed
		case "sound":
			cfg.Sound = fv.sound
		case "debug":
			cfg.Debug = fv.debug
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
