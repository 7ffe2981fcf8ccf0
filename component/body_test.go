package component

import (
	"testing"

	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/parameter"
)

func TestNewSun(t *testing.T) {
	sun := NewSun(600, 400)

	if sun.X != 600 || sun.Y != 400 {
		t.Errorf("Expected sun at (600, 400), got (%f, %f)", sun.X, sun.Y)
	}
	if sun.Radius != 30 {
		t.Errorf("Expected sun radius 30, got %f", sun.Radius)
	}
	if sun.Color != (core.RGB{R: 255, G: 255, B: 0}) {
		t.Errorf("Expected yellow sun, got %v", sun.Color)
	}
	if sun.Orbit != OrbitNone {
		t.Errorf("Expected static sun, got orbit %s", sun.Orbit)
	}
	if sun.Trail != nil {
		t.Error("Expected sun to keep no trail")
	}
}

func TestNewPlanetAndMoon(t *testing.T) {
	earth := NewPlanet("Earth", 150, 8, core.RGB{R: 100, G: 149, B: 237}, 0.03, 1.5, parameter.TrailLength)
	moon := NewMoon("Moon", 20, 2, core.RGB{R: 192, G: 192, B: 192}, 0.1)
	earth.AddMoon(moon)

	if earth.Orbit != OrbitCenter {
		t.Errorf("Expected planet orbit center, got %s", earth.Orbit)
	}
	if earth.Angle != 1.5 {
		t.Errorf("Expected planet angle 1.5, got %f", earth.Angle)
	}
	if earth.Trail == nil || earth.Trail.Cap() != 100 {
		t.Fatalf("Expected planet trail with capacity 100")
	}
	if earth.Mass != parameter.DefaultMass {
		t.Errorf("Expected default mass, got %f", earth.Mass)
	}

	if moon.Orbit != OrbitParent {
		t.Errorf("Expected moon orbit parent, got %s", moon.Orbit)
	}
	if moon.Angle != 0 {
		t.Errorf("Expected moon angle 0, got %f", moon.Angle)
	}
	if moon.Trail != nil {
		t.Error("Expected moon to keep no trail")
	}
	if len(earth.Moons) != 1 || earth.Moons[0] != moon {
		t.Error("Expected moon attached to planet")
	}
}

func TestBodyCloneIsDeep(t *testing.T) {
	p := NewPlanet("P", 10, 1, core.RGBWhite, 0.1, 0, 4)
	p.Trail.Push(Point{1, 2})
	p.AddMoon(NewMoon("M", 2, 1, core.RGBWhite, 0.2))

	c := p.Clone()
	c.Trail.Push(Point{3, 4})
	c.Moons[0].Angle = 7

	if p.Trail.Len() != 1 {
		t.Errorf("Expected original trail untouched, got length %d", p.Trail.Len())
	}
	if p.Moons[0].Angle != 0 {
		t.Errorf("Expected original moon untouched, got angle %f", p.Moons[0].Angle)
	}
}

func TestOrbitString(t *testing.T) {
	tests := map[Orbit]string{
		OrbitNone:   "none",
		OrbitCenter: "center",
		OrbitParent: "parent",
		Orbit(42):   "unknown",
	}
	for o, want := range tests {
		if o.String() != want {
			t.Errorf("Orbit(%d).String() = %q, want %q", o, o.String(), want)
		}
	}
}
