package system

import (
	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/vmath"
)

// RevolutionFunc is notified when a planet completes a full turn
// index is the planet's position in the update list
type RevolutionFunc func(index int, planet *component.Body)

// OrbitSystem advances every orbiting body by one frame
// Planets orbit the sun's fixed center, moons orbit their planet's just-updated position
type OrbitSystem struct {
	onRevolution RevolutionFunc

	// Telemetry
	ticks uint64
}

// NewOrbitSystem creates an orbit system; onRevolution may be nil
func NewOrbitSystem(onRevolution RevolutionFunc) *OrbitSystem {
	return &OrbitSystem{onRevolution: onRevolution}
}

// Ticks returns the number of completed Update calls
func (s *OrbitSystem) Ticks() uint64 {
	return s.ticks
}

// Update advances all planets in list order, each followed by its moons
func (s *OrbitSystem) Update(sun *component.Body, planets []*component.Body) {
	for i, p := range planets {
		if s.step(p, sun.X, sun.Y) && s.onRevolution != nil {
			s.onRevolution(i, p)
		}

		if p.Trail != nil {
			x, y := vmath.PixelPoint(p.X, p.Y)
			p.Trail.Push(component.Point{X: x, Y: y})
		}

		for _, m := range p.Moons {
			s.step(m, p.X, p.Y)
		}
	}
	s.ticks++
}

// step increments b's angle and recomputes its position around (refX, refY)
// Returns true when the increment completed a revolution
func (s *OrbitSystem) step(b *component.Body, refX, refY float64) bool {
	if b.Orbit == component.OrbitNone {
		return false
	}

	before := vmath.Turns(b.Angle)
	b.Angle += b.Speed
	b.X, b.Y = vmath.OrbitPoint(refX, refY, b.Distance, b.Angle)

	if vmath.Turns(b.Angle) > before {
		b.Revolutions++
		return true
	}
	return false
}
