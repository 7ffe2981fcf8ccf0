package renderers

import (
	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/vmath"
)

// PlanetsRenderer composites every planet in list order:
// orbit guide, trail, body, moons, then the name label
type PlanetsRenderer struct {
	guideColor render.RGB
	labelColor render.RGB
}

// NewPlanetsRenderer creates a new planets renderer
func NewPlanetsRenderer() *PlanetsRenderer {
	return &PlanetsRenderer{
		guideColor: core.RGBFrom(parameter.ColorOrbitGuide),
		labelColor: core.RGBFrom(parameter.ColorLabel),
	}
}

// Render draws all planets; bodies are read-only here
func (r *PlanetsRenderer) Render(ctx render.RenderContext, frame *render.Frame) {
	if ctx.Sun == nil {
		return
	}
	cx, cy := vmath.PixelPoint(ctx.Sun.X, ctx.Sun.Y)

	for _, p := range ctx.Planets {
		frame.Circle(cx, cy, vmath.Pixel(p.Distance), r.guideColor)

		if p.Trail != nil {
			r.drawTrail(frame, p.Trail, p.Color)
		}

		px, py := vmath.PixelPoint(p.X, p.Y)
		frame.FillCircle(px, py, vmath.Pixel(p.Radius), p.Color)

		for _, m := range p.Moons {
			mx, my := vmath.PixelPoint(m.X, m.Y)
			frame.FillCircle(mx, my, vmath.Pixel(m.Radius), m.Color)
		}

		frame.AddLabel(render.Label{
			X:     vmath.Pixel(p.X + p.Radius + parameter.LabelOffsetX),
			Y:     vmath.Pixel(p.Y + parameter.LabelOffsetY),
			Text:  p.Name,
			Color: r.labelColor,
		})
	}
}

// drawTrail plots points scaled by recency: index/len, oldest dimmest
// Index 0 scales to black and is skipped
func (r *PlanetsRenderer) drawTrail(frame *render.Frame, trail *component.Trail, base render.RGB) {
	n := trail.Len()
	if n < 2 {
		return
	}
	for i := 1; i < n; i++ {
		pt := trail.At(i)
		frame.Plot(pt.X, pt.Y, base.Scale(float64(i)/float64(n)))
	}
}
