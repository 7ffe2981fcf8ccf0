// Package window presents frames in a native window through ebiten
package window

import (
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/orrery/render"
)

// Window is a hosted display: ebiten owns the frame pacing and calls back per tick
type Window struct {
	width, height int
	title         string
	fps           int

	step   func() bool
	canvas *ebiten.Image
	pixels []byte
	labels []render.Label

	closeOnce sync.Once
}

// New creates a window of the scene size; nothing opens until RunHosted
func New(width, height, fps int, title string) *Window {
	return &Window{
		width:  width,
		height: height,
		title:  title,
		fps:    fps,
		pixels: make([]byte, width*height*4),
	}
}

// RunHosted opens the window and blocks until step returns false or the window closes
func (w *Window) RunHosted(step func() bool) error {
	w.step = step

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(w.fps)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// PollQuit reports the close button, Escape or q
func (w *Window) PollQuit() bool {
	return ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

// Present copies the frame for the next Draw
func (w *Window) Present(frame *render.Frame) error {
	if frame.Width() != w.width || frame.Height() != w.height {
		return fmt.Errorf("frame %dx%d does not match window %dx%d",
			frame.Width(), frame.Height(), w.width, w.height)
	}
	frame.WriteRGBA(w.pixels)
	w.labels = append(w.labels[:0], frame.Labels()...)
	return nil
}

// Close has nothing to release; the window goes away when RunGame returns
func (w *Window) Close() {
	w.closeOnce.Do(func() {
		log.Printf("display: window closed")
	})
}

// Update implements ebiten.Game
func (w *Window) Update() error {
	if w.step == nil || !w.step() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game
func (w *Window) Draw(screen *ebiten.Image) {
	if w.canvas == nil {
		w.canvas = ebiten.NewImage(w.width, w.height)
	}
	w.canvas.WritePixels(w.pixels)
	screen.DrawImage(w.canvas, nil)

	// Debug font is white only
	for _, l := range w.labels {
		ebitenutil.DebugPrintAt(screen, l.Text, l.X, l.Y)
	}
}

// Layout implements ebiten.Game; the scene keeps its size and ebiten scales it
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
