package renderers

import (
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/vmath"
)

// SunRenderer draws the sun as a filled disc
type SunRenderer struct{}

// NewSunRenderer creates a new sun renderer
func NewSunRenderer() *SunRenderer {
	return &SunRenderer{}
}

// Render draws the sun at its fixed position
func (r *SunRenderer) Render(ctx render.RenderContext, frame *render.Frame) {
	if ctx.Sun == nil {
		return
	}
	x, y := vmath.PixelPoint(ctx.Sun.X, ctx.Sun.Y)
	frame.FillCircle(x, y, vmath.Pixel(ctx.Sun.Radius), ctx.Sun.Color)
}
