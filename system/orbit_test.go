package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/parameter"
)

const tolerance = 1e-9

func newEarth(angle float64) *component.Body {
	earth := component.NewPlanet("Earth", 150, 8, core.RGB{R: 100, G: 149, B: 237}, 0.03, angle, parameter.TrailLength)
	earth.AddMoon(component.NewMoon("Moon", 20, 2, core.RGB{R: 192, G: 192, B: 192}, 0.1))
	return earth
}

func TestOrbitSystem_EarthFirstStep(t *testing.T) {
	sun := component.NewSun(600, 400)
	earth := newEarth(0)
	s := NewOrbitSystem(nil)

	s.Update(sun, []*component.Body{earth})

	wantX := 600 + 150*math.Cos(0.03)
	wantY := 400 + 150*math.Sin(0.03)
	if math.Abs(earth.X-wantX) > tolerance || math.Abs(earth.Y-wantY) > tolerance {
		t.Errorf("Earth at (%f, %f), want (%f, %f)", earth.X, earth.Y, wantX, wantY)
	}
	if earth.Trail.Len() != 1 {
		t.Errorf("Expected one trail point, got %d", earth.Trail.Len())
	}
	if p := earth.Trail.At(0); p.X != int(wantX) || p.Y != int(wantY) {
		t.Errorf("Trail point %v, want (%d, %d)", p, int(wantX), int(wantY))
	}
	if s.Ticks() != 1 {
		t.Errorf("Expected 1 tick, got %d", s.Ticks())
	}
}

func TestOrbitSystem_ClosedFormAfterN(t *testing.T) {
	sun := component.NewSun(600, 400)
	planets := []*component.Body{}
	for _, spec := range parameter.DefaultPlanets {
		planets = append(planets, component.NewPlanet(spec.Name, spec.Distance, spec.Radius, core.RGBFrom(spec.Color), spec.Speed, 0.7, parameter.TrailLength))
	}
	s := NewOrbitSystem(nil)

	const n = 500
	for i := 0; i < n; i++ {
		s.Update(sun, planets)
	}

	for _, p := range planets {
		wantAngle := 0.7 + n*p.Speed
		if math.Abs(p.Angle-wantAngle) > 1e-9 {
			t.Errorf("%s angle %f, want %f", p.Name, p.Angle, wantAngle)
		}
		wantX := sun.X + p.Distance*math.Cos(p.Angle)
		wantY := sun.Y + p.Distance*math.Sin(p.Angle)
		if math.Abs(p.X-wantX) > tolerance || math.Abs(p.Y-wantY) > tolerance {
			t.Errorf("%s at (%f, %f), want (%f, %f)", p.Name, p.X, p.Y, wantX, wantY)
		}
	}
}

func TestOrbitSystem_TrailLengthIsMinOfUpdates(t *testing.T) {
	sun := component.NewSun(600, 400)
	earth := newEarth(0)
	s := NewOrbitSystem(nil)

	for i := 1; i <= 160; i++ {
		s.Update(sun, []*component.Body{earth})
		if want := min(i, 100); earth.Trail.Len() != want {
			t.Fatalf("After %d updates trail length %d, want %d", i, earth.Trail.Len(), want)
		}
	}
}

func TestOrbitSystem_TrailKeepsMostRecent100(t *testing.T) {
	sun := component.NewSun(600, 400)
	earth := newEarth(0)
	s := NewOrbitSystem(nil)

	var history []component.Point
	for i := 0; i < 150; i++ {
		s.Update(sun, []*component.Body{earth})
		history = append(history, component.Point{X: int(earth.X), Y: int(earth.Y)})
	}

	if earth.Trail.Len() != 100 {
		t.Fatalf("Expected trail length 100, got %d", earth.Trail.Len())
	}
	// Update #51 is history[50]
	if earth.Trail.At(0) != history[50] {
		t.Errorf("Oldest trail point %v, want position of update #51 %v", earth.Trail.At(0), history[50])
	}
	if earth.Trail.At(99) != history[149] {
		t.Errorf("Newest trail point %v, want %v", earth.Trail.At(99), history[149])
	}
}

func TestOrbitSystem_MoonFollowsPlanet(t *testing.T) {
	sun := component.NewSun(600, 400)
	earth := newEarth(2.0)
	moon := earth.Moons[0]
	s := NewOrbitSystem(nil)

	for i := 1; i <= 300; i++ {
		s.Update(sun, []*component.Body{earth})

		wantX := earth.X + 20*math.Cos(moon.Angle)
		wantY := earth.Y + 20*math.Sin(moon.Angle)
		if math.Abs(moon.X-wantX) > tolerance || math.Abs(moon.Y-wantY) > tolerance {
			t.Fatalf("Update %d: moon at (%f, %f), want (%f, %f)", i, moon.X, moon.Y, wantX, wantY)
		}
		if math.Abs(moon.Angle-float64(i)*0.1) > 1e-9 {
			t.Fatalf("Update %d: moon angle %f, want %f", i, moon.Angle, float64(i)*0.1)
		}
	}
	if moon.Trail != nil {
		t.Error("Expected moon to keep no trail")
	}
}

func TestOrbitSystem_SunNeverMoves(t *testing.T) {
	sun := component.NewSun(600, 400)
	s := NewOrbitSystem(nil)
	for i := 0; i < 10; i++ {
		s.Update(sun, []*component.Body{newEarth(0)})
	}
	if sun.X != 600 || sun.Y != 400 || sun.Angle != 0 {
		t.Errorf("Expected static sun, got (%f, %f) angle %f", sun.X, sun.Y, sun.Angle)
	}
}

func TestOrbitSystem_RevolutionCallback(t *testing.T) {
	sun := component.NewSun(600, 400)
	fast := component.NewPlanet("Fast", 50, 2, core.RGBWhite, math.Pi/2, 0.1, 4)
	slow := component.NewPlanet("Slow", 90, 2, core.RGBWhite, 0.01, 0.1, 4)

	var got []int
	s := NewOrbitSystem(func(index int, p *component.Body) {
		got = append(got, index)
	})

	// 0.1 + 4*(π/2) crosses 2π on the 4th update
	for i := 0; i < 4; i++ {
		s.Update(sun, []*component.Body{slow, fast})
	}

	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("Expected one revolution from index 1, got %v", got)
	}
	if fast.Revolutions != 1 || slow.Revolutions != 0 {
		t.Errorf("Revolutions fast=%d slow=%d, want 1 and 0", fast.Revolutions, slow.Revolutions)
	}
}
