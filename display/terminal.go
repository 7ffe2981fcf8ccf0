package display

import (
	"fmt"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/render"
)

// halfBlock paints the upper pixel as foreground and the lower as background
const halfBlock = '▀'

// Terminal presents frames on a tcell screen, two scene rows per cell row
type Terminal struct {
	screen tcell.Screen
	colors *colorMapper
	events chan tcell.Event
	done   chan struct{}

	// cells holds the upper/lower pixel of each cell, reused across frames
	cells []cellPair

	closeOnce sync.Once
}

type cellPair struct {
	top, bottom core.RGB
}

// NewTerminal initializes the terminal screen in the given color mode
func NewTerminal(mode ColorMode) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return newTerminal(screen, mode), nil
}

// newTerminal wraps an initialized screen
func newTerminal(screen tcell.Screen, mode ColorMode) *Terminal {
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	t := &Terminal{
		screen: screen,
		colors: newColorMapper(mode),
		events: make(chan tcell.Event, parameter.EventQueueSize),
		done:   make(chan struct{}),
	}
	go t.forwardEvents()
	return t
}

// forwardEvents moves screen events into the queue until the screen is finalized
func (t *Terminal) forwardEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// SetTitle sets the terminal window title where supported
func (t *Terminal) SetTitle(title string) {
	t.screen.SetTitle(title)
}

// PollQuit drains queued events without blocking
func (t *Terminal) PollQuit() bool {
	quit := false
	for {
		select {
		case ev := <-t.events:
			if t.handleEvent(ev) {
				quit = true
			}
		default:
			return quit
		}
	}
}

// handleEvent reports whether ev requests quit
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return ev.Rune() == 'q' || ev.Rune() == 'Q'
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

// Present scales the frame to the screen keeping its aspect, centered
func (t *Terminal) Present(frame *render.Frame) error {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}

	v := fitViewport(frame.Width(), frame.Height(), cols, rows)
	t.screen.Clear()

	if n := v.cols * v.rows; cap(t.cells) < n {
		t.cells = make([]cellPair, n)
	} else {
		t.cells = t.cells[:n]
	}

	for cy := 0; cy < v.rows; cy++ {
		for cx := 0; cx < v.cols; cx++ {
			pair := cellPair{
				top:    v.pool(frame, cx, 2*cy),
				bottom: v.pool(frame, cx, 2*cy+1),
			}
			t.cells[cy*v.cols+cx] = pair
			style := tcell.StyleDefault.
				Foreground(t.colors.Color(pair.top)).
				Background(t.colors.Color(pair.bottom))
			t.screen.SetContent(v.offX+cx, v.offY+cy, halfBlock, nil, style)
		}
	}

	for _, l := range frame.Labels() {
		t.drawLabel(v, l)
	}

	t.screen.Show()
	return nil
}

// drawLabel writes text starting at the cell holding the label anchor
func (t *Terminal) drawLabel(v viewport, l render.Label) {
	cx := int(float64(l.X) * v.scale)
	cy := int(float64(l.Y)*v.scale) / 2
	if cy < 0 || cy >= v.rows {
		return
	}
	fg := t.colors.Color(l.Color)
	for _, r := range l.Text {
		if cx >= 0 && cx < v.cols {
			bg := t.colors.Color(t.cells[cy*v.cols+cx].top)
			t.screen.SetContent(v.offX+cx, v.offY+cy, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
		cx++
	}
}

// Close restores the terminal. Safe to call multiple times
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
		log.Printf("display: terminal closed")
	})
}

// viewport maps scene pixels onto a cell grid of half-block pixels
type viewport struct {
	scale      float64 // cell columns per scene pixel
	cols, rows int     // cell extent of the scaled scene
	offX, offY int     // cell offset centering the scene
}

// fitViewport scales a w×h scene into cols×rows cells, each cell two pixels tall
func fitViewport(w, h, cols, rows int) viewport {
	sx := float64(cols) / float64(w)
	sy := float64(rows*2) / float64(h)
	scale := min(sx, sy)

	v := viewport{
		scale: scale,
		cols:  max(1, int(float64(w)*scale)),
		rows:  max(1, int(float64(h)*scale)/2),
	}
	v.cols = min(v.cols, cols)
	v.rows = min(v.rows, rows)
	v.offX = (cols - v.cols) / 2
	v.offY = (rows - v.rows) / 2
	return v
}

// pool returns the brightest scene pixel covered by virtual pixel (px, py)
// Max-luma keeps thin trails and small moons visible after downscaling
func (v viewport) pool(frame *render.Frame, px, py int) core.RGB {
	x0 := int(float64(px) / v.scale)
	x1 := max(x0+1, int(float64(px+1)/v.scale))
	y0 := int(float64(py) / v.scale)
	y1 := max(y0+1, int(float64(py+1)/v.scale))

	var best core.RGB
	bestLuma := -1
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !frame.InBounds(x, y) {
				continue
			}
			c := frame.Get(x, y)
			if l := c.Luma(); l > bestLuma {
				best, bestLuma = c, l
			}
		}
	}
	return best
}
