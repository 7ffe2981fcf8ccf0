package render

import (
	"github.com/lixenwraith/orrery/core"
)

// RGB is an alias to core.RGB so renderers need only this package
type RGB = core.RGB

// Label is a text overlay anchored at its top-left pixel
// Kept apart from pixels so each display draws text natively
type Label struct {
	X, Y  int
	Text  string
	Color RGB
}

// Frame is a row-major RGB pixel buffer with a label overlay
type Frame struct {
	pix    []RGB
	labels []Label
	width  int
	height int
}

// NewFrame creates a black frame with the specified dimensions
func NewFrame(width, height int) *Frame {
	return &Frame{
		pix:    make([]RGB, width*height),
		labels: make([]Label, 0, 16),
		width:  width,
		height: height,
	}
}

// Width returns the frame width in pixels
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels
func (f *Frame) Height() int {
	return f.height
}

// Clear fills every pixel with bg using exponential copy and drops all labels
func (f *Frame) Clear(bg RGB) {
	f.labels = f.labels[:0]
	if len(f.pix) == 0 {
		return
	}
	f.pix[0] = bg
	for filled := 1; filled < len(f.pix); filled *= 2 {
		copy(f.pix[filled:], f.pix[:filled])
	}
}

// InBounds returns true if (x, y) is a pixel of the frame
func (f *Frame) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Set writes one pixel, ignoring out-of-bounds coordinates
func (f *Frame) Set(x, y int, c RGB) {
	if !f.InBounds(x, y) {
		return
	}
	f.pix[y*f.width+x] = c
}

// Get returns the pixel at (x, y), black when out of bounds
func (f *Frame) Get(x, y int) RGB {
	if !f.InBounds(x, y) {
		return core.RGBBlack
	}
	return f.pix[y*f.width+x]
}

// Pixels exposes the row-major pixel slice; callers must not retain it across frames
func (f *Frame) Pixels() []RGB {
	return f.pix
}

// AddLabel queues a text overlay
func (f *Frame) AddLabel(l Label) {
	f.labels = append(f.labels, l)
}

// Labels returns the queued text overlays in draw order
func (f *Frame) Labels() []Label {
	return f.labels
}

// WriteRGBA fills dst with opaque RGBA bytes, len(dst) must be 4*width*height
func (f *Frame) WriteRGBA(dst []byte) {
	for i, c := range f.pix {
		o := i * 4
		dst[o] = c.R
		dst[o+1] = c.G
		dst[o+2] = c.B
		dst[o+3] = 0xff
	}
}
