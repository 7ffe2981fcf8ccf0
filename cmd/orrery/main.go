package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/display"
	"github.com/lixenwraith/orrery/display/window"
	"github.com/lixenwraith/orrery/engine"
)

const (
	logDir      = "logs"
	logFileName = "orrery.log"
	maxLogSize  = 10 * 1024 * 1024
)

func main() {
	os.Exit(execute(os.Args))
}

// execute runs the program and returns its exit code
// Deferred cleanup, the log file included, completes before main exits
func execute(args []string) (code int) {
	// Panic Recovery: Ensure terminal is reset even if the animation crashes
	defer func() {
		if r := recover(); r != nil {
			display.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mORRERY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	cfg, err := config.Parse(args[0], args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Printf("orrery: %v", err)
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		return 1
	}
	return 0
}

// run builds the scene, opens the display and blocks until quit
func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("orrery: seed %d, %d planets, display %s", seed, len(cfg.Planets), cfg.Display)

	sim := engine.NewSimulation(engine.SimulationConfig{
		Width:       cfg.Width,
		Height:      cfg.Height,
		StarCount:   cfg.StarCount,
		StarMode:    cfg.StarMode,
		TrailLength: cfg.TrailLength,
		Planets:     cfg.Planets,
	}, rand.New(rand.NewSource(seed)))

	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("audio: init failed, continuing without sound: %v", err)
		} else {
			defer sm.Cleanup()
			sim.OnRevolution(func(index int, planet *component.Body) {
				log.Printf("orbit: %s completed revolution %d", planet.Name, planet.Revolutions)
				sm.PlayOrbit(index)
			})
		}
	}

	disp, err := displayOpener(cfg)
	if err != nil {
		return err
	}
	defer disp.Close()

	return engine.NewLoop(sim, disp, cfg.FPS).Run(ctx)
}

// displayOpener is replaced in tests to avoid touching a real screen
var displayOpener = openDisplay

// openDisplay creates the configured backend
func openDisplay(cfg config.Config) (engine.Display, error) {
	kind := resolveDisplay(cfg.Display, display.StdoutIsTerminal())

	switch kind {
	case config.DisplayWindow:
		return window.New(cfg.Width, cfg.Height, cfg.FPS, cfg.Title), nil
	default:
		term, err := display.NewTerminal(display.ParseColorMode(cfg.ColorMode))
		if err != nil {
			return nil, fmt.Errorf("terminal display: %w", err)
		}
		term.SetTitle(cfg.Title)
		return term, nil
	}
}

// resolveDisplay maps auto to the terminal when stdout is a TTY, else the window
func resolveDisplay(kind string, tty bool) string {
	if kind != config.DisplayAuto {
		return kind
	}
	if tty {
		return config.DisplayTerminal
	}
	return config.DisplayWindow
}

// setupLogging sends log output to logs/orrery.log when debug is set, otherwise discards it
// A log file over maxLogSize is rotated to a timestamped name first
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("orrery-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return f
}
