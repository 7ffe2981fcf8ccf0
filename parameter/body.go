package parameter

// SunRadius is the fixed sun disc radius in pixels
const SunRadius = 30

// DefaultMass is the vestigial body mass; motion never reads it
const DefaultMass = 1.0

// BodySpec describes one orbiting body before construction
// Distance is from the sun for planets and from the parent for moons
type BodySpec struct {
	Name     string
	Distance float64
	Radius   float64
	Color    [3]uint8
	Speed    float64 // radians per frame

	// Angle overrides the initial phase when non-nil
	// Planets otherwise start at a random phase, moons at zero
	Angle *float64

	Moons []BodySpec
}

// DefaultPlanets is the hardcoded system, inner to outer
var DefaultPlanets = []BodySpec{
	{Name: "Mercury", Distance: 80, Radius: 4, Color: [3]uint8{169, 169, 169}, Speed: 0.04},
	{Name: "Venus", Distance: 110, Radius: 6, Color: [3]uint8{255, 198, 73}, Speed: 0.035},
	{
		Name: "Earth", Distance: 150, Radius: 8, Color: [3]uint8{100, 149, 237}, Speed: 0.03,
		Moons: []BodySpec{
			{Name: "Moon", Distance: 20, Radius: 2, Color: [3]uint8{192, 192, 192}, Speed: 0.1},
		},
	},
	{Name: "Mars", Distance: 190, Radius: 6, Color: [3]uint8{205, 92, 92}, Speed: 0.025},
	{Name: "Jupiter", Distance: 280, Radius: 20, Color: [3]uint8{255, 140, 0}, Speed: 0.015},
	{Name: "Saturn", Distance: 350, Radius: 16, Color: [3]uint8{238, 203, 173}, Speed: 0.01},
}
