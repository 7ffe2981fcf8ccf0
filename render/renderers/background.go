package renderers

import (
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/render"
)

// BackgroundRenderer fills the frame with the dark space color
type BackgroundRenderer struct {
	color render.RGB
}

// NewBackgroundRenderer creates a new background renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{color: core.RGBFrom(parameter.ColorBackground)}
}

// Render clears every pixel and drops last frame's labels
func (r *BackgroundRenderer) Render(ctx render.RenderContext, frame *render.Frame) {
	frame.Clear(r.color)
}
