package component

import (
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/parameter"
)

// Orbit tags what a body's position is derived from
type Orbit uint8

const (
	// OrbitNone marks a static body (the sun)
	OrbitNone Orbit = iota
	// OrbitCenter orbits the fixed scene center
	OrbitCenter
	// OrbitParent orbits the owning body's current position
	OrbitParent
)

// String returns the orbit tag name
func (o Orbit) String() string {
	switch o {
	case OrbitNone:
		return "none"
	case OrbitCenter:
		return "center"
	case OrbitParent:
		return "parent"
	default:
		return "unknown"
	}
}

// Body is a drawable point mass
// Sun, planets and moons share this flat layout, distinguished by Orbit
type Body struct {
	Name   string
	X, Y   float64
	Radius float64
	Color  core.RGB
	Mass   float64 // vestigial, not read by motion

	Orbit    Orbit
	Distance float64 // from the sun center (OrbitCenter) or the parent (OrbitParent)
	Speed    float64 // radians per frame
	Angle    float64 // radians, never normalized

	// Revolutions counts completed full turns since construction
	Revolutions int64

	// Trail is nil for bodies that keep no position history
	Trail *Trail

	// Moons in draw order
	Moons []*Body
}

// NewSun creates the static center body
func NewSun(cx, cy float64) *Body {
	return &Body{
		Name:   "Sun",
		X:      cx,
		Y:      cy,
		Radius: parameter.SunRadius,
		Color:  core.RGBFrom(parameter.ColorSun),
		Mass:   parameter.DefaultMass,
		Orbit:  OrbitNone,
	}
}

// NewPlanet creates a body orbiting the scene center starting at angle
// Position stays at the origin until the first update
func NewPlanet(name string, distance, radius float64, color core.RGB, speed, angle float64, trailLength int) *Body {
	return &Body{
		Name:     name,
		Radius:   radius,
		Color:    color,
		Mass:     parameter.DefaultMass,
		Orbit:    OrbitCenter,
		Distance: distance,
		Speed:    speed,
		Angle:    angle,
		Trail:    NewTrail(trailLength),
	}
}

// NewMoon creates a body orbiting its parent, starting at angle zero
func NewMoon(name string, distance, radius float64, color core.RGB, speed float64) *Body {
	return &Body{
		Name:     name,
		Radius:   radius,
		Color:    color,
		Mass:     parameter.DefaultMass,
		Orbit:    OrbitParent,
		Distance: distance,
		Speed:    speed,
	}
}

// AddMoon appends m to the draw order
func (b *Body) AddMoon(m *Body) {
	b.Moons = append(b.Moons, m)
}

// Clone returns a deep copy including trail and moons
func (b *Body) Clone() *Body {
	c := *b
	if b.Trail != nil {
		t := *b.Trail
		t.points = make([]Point, len(b.Trail.points))
		copy(t.points, b.Trail.points)
		c.Trail = &t
	}
	if b.Moons != nil {
		c.Moons = make([]*Body, len(b.Moons))
		for i, m := range b.Moons {
			c.Moons[i] = m.Clone()
		}
	}
	return &c
}
