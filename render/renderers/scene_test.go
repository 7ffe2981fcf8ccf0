package renderers

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/render"
)

var (
	space = render.RGB{R: 0, G: 0, B: 20}
	white = render.RGB{R: 255, G: 255, B: 255}
)

func countPixels(f *render.Frame, c render.RGB) int {
	n := 0
	for _, p := range f.Pixels() {
		if p == c {
			n++
		}
	}
	return n
}

func TestBackgroundRenderer(t *testing.T) {
	frame := render.NewFrame(20, 10)
	frame.Set(3, 3, white)
	frame.AddLabel(render.Label{Text: "stale"})

	NewBackgroundRenderer().Render(render.RenderContext{}, frame)

	if countPixels(frame, space) != 200 {
		t.Error("Expected every pixel set to the space color")
	}
	if len(frame.Labels()) != 0 {
		t.Error("Expected stale labels cleared")
	}
}

func TestStarsRenderer_FlickerRegenerates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ctx := render.RenderContext{Rand: rng, StarCount: 100}
	r := NewStarsRenderer()

	first := render.NewFrame(1200, 800)
	first.Clear(space)
	r.Render(ctx, first)

	second := render.NewFrame(1200, 800)
	second.Clear(space)
	r.Render(ctx, second)

	n := countPixels(first, white)
	if n == 0 || n > 100 {
		t.Fatalf("Expected 1..100 star pixels, got %d", n)
	}

	same := true
	for i, c := range first.Pixels() {
		if second.Pixels()[i] != c {
			same = false
			break
		}
	}
	if same {
		t.Error("Expected flickering stars to differ between frames")
	}
}

func TestStarsRenderer_FixedField(t *testing.T) {
	stars := StarField(rand.New(rand.NewSource(1)), 50, 40, 30)
	if len(stars) != 30 {
		t.Fatalf("Expected 30 stars, got %d", len(stars))
	}
	for _, s := range stars {
		if s.X < 0 || s.X > 50 || s.Y < 0 || s.Y > 40 {
			t.Fatalf("Star %v outside inclusive bounds", s)
		}
	}

	ctx := render.RenderContext{Stars: stars, Rand: rand.New(rand.NewSource(99)), StarCount: 100}
	a := render.NewFrame(50, 40)
	b := render.NewFrame(50, 40)
	NewStarsRenderer().Render(ctx, a)
	NewStarsRenderer().Render(ctx, b)

	for i := range a.Pixels() {
		if a.Pixels()[i] != b.Pixels()[i] {
			t.Fatal("Expected fixed star field to be identical across frames")
		}
	}
	for _, s := range stars {
		if a.InBounds(s.X, s.Y) && a.Get(s.X, s.Y) != white {
			t.Errorf("Expected star at %v", s)
		}
	}
}

func TestSunRenderer(t *testing.T) {
	frame := render.NewFrame(1200, 800)
	frame.Clear(space)
	sun := component.NewSun(600, 400)

	NewSunRenderer().Render(render.RenderContext{Sun: sun}, frame)

	yellow := render.RGB{R: 255, G: 255, B: 0}
	if frame.Get(600, 400) != yellow || frame.Get(630, 400) != yellow {
		t.Error("Expected sun disc of radius 30 at center")
	}
	if frame.Get(631, 400) == yellow {
		t.Error("Expected sun disc to stop at radius 30")
	}
}
