package render

import (
	"math/rand"

	"github.com/lixenwraith/orrery/component"
)

// RenderContext provides scene state for renderers, passed by value
// Renderers read bodies but never write them
type RenderContext struct {
	// Scene bodies, updated for this frame
	Sun     *component.Body
	Planets []*component.Body

	// Rand feeds per-frame noise (flickering stars)
	Rand *rand.Rand

	// Stars holds a fixed star field; nil regenerates StarCount stars every draw
	Stars     []component.Point
	StarCount int
}
