package renderers

import (
	"math/rand"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/render"
)

// StarsRenderer scatters single-pixel stars
// Without a fixed field in the context, positions are redrawn from ctx.Rand every frame
type StarsRenderer struct {
	color render.RGB
}

// NewStarsRenderer creates a new star field renderer
func NewStarsRenderer() *StarsRenderer {
	return &StarsRenderer{color: core.RGBFrom(parameter.ColorStar)}
}

// Render draws the fixed field when present, otherwise fresh noise
func (r *StarsRenderer) Render(ctx render.RenderContext, frame *render.Frame) {
	if ctx.Stars != nil {
		for _, s := range ctx.Stars {
			frame.Plot(s.X, s.Y, r.color)
		}
		return
	}
	if ctx.Rand == nil {
		return
	}

	w, h := frame.Width(), frame.Height()
	for i := 0; i < ctx.StarCount; i++ {
		// Inclusive bounds; edge coordinates fall outside and are clipped
		x := ctx.Rand.Intn(w + 1)
		y := ctx.Rand.Intn(h + 1)
		frame.Plot(x, y, r.color)
	}
}

// StarField generates count stars once, for the fixed star mode
func StarField(rng *rand.Rand, width, height, count int) []component.Point {
	stars := make([]component.Point, count)
	for i := range stars {
		stars[i] = component.Point{X: rng.Intn(width + 1), Y: rng.Intn(height + 1)}
	}
	return stars
}
