package engine

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/orrery/render"
)

// State is the main loop lifecycle
type State uint8

const (
	StateRunning State = iota
	StateStopped       // terminal
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Display is the presentation side of the loop
type Display interface {
	// PollQuit drains pending input without blocking and reports a quit signal
	PollQuit() bool

	// Present shows a completed frame
	Present(frame *render.Frame) error

	// Close releases display resources. Safe to call multiple times
	Close()
}

// HostedDisplay is implemented by displays that own the frame pacing
// RunHosted calls step once per host tick until it returns false
type HostedDisplay interface {
	Display
	RunHosted(step func() bool) error
}

// Loop runs poll, update, draw, present, then waits out the frame budget
type Loop struct {
	sim      *Simulation
	display  Display
	interval time.Duration

	state     State
	err       error
	closeOnce sync.Once
}

// NewLoop creates a loop capped at fps iterations per second
func NewLoop(sim *Simulation, display Display, fps int) *Loop {
	if fps <= 0 {
		fps = 1
	}
	return &Loop{
		sim:      sim,
		display:  display,
		interval: time.Second / time.Duration(fps),
		state:    StateRunning,
	}
}

// State returns the current lifecycle state
func (l *Loop) State() State {
	return l.state
}

// Step runs one iteration and reports whether the loop is still running
func (l *Loop) Step(ctx context.Context) bool {
	if l.state == StateStopped {
		return false
	}
	if ctx.Err() != nil || l.display.PollQuit() {
		l.stop()
		return false
	}

	l.sim.Update()
	frame := l.sim.Draw()

	if err := l.display.Present(frame); err != nil {
		l.err = fmt.Errorf("present frame %d: %w", l.sim.Frames(), err)
		l.stop()
		return false
	}
	return true
}

// Run iterates until a quit signal or ctx cancellation, then releases the display
// Returns nil on a normal quit; a panic in a step still closes the display before propagating
func (l *Loop) Run(ctx context.Context) error {
	log.Printf("loop: start, interval %v", l.interval)
	start := time.Now()
	defer l.stop()

	if hosted, ok := l.display.(HostedDisplay); ok {
		if err := hosted.RunHosted(func() bool { return l.Step(ctx) }); err != nil && l.err == nil {
			l.err = err
		}
		l.stop()
	} else {
		l.runPaced(ctx)
	}

	log.Printf("loop: stopped after %d frames in %v", l.sim.Frames(), time.Since(start).Round(time.Millisecond))
	return l.err
}

// runPaced drives Step from a ticker, the wait being the only suspension point
func (l *Loop) runPaced(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for l.Step(ctx) {
		select {
		case <-ctx.Done():
			l.stop()
			return
		case <-ticker.C:
		}
	}
}

// stop enters the terminal state and releases the display once
func (l *Loop) stop() {
	l.state = StateStopped
	l.closeOnce.Do(l.display.Close)
}
