package engine

import (
	"math/rand"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/render/renderers"
	"github.com/lixenwraith/orrery/system"
	"github.com/lixenwraith/orrery/vmath"
)

// SimulationConfig is the subset of settings the simulation owns
type SimulationConfig struct {
	Width, Height int
	StarCount     int
	StarMode      string
	TrailLength   int
	Planets       []parameter.BodySpec
}

// Simulation is the explicit context of one run: bodies, randomness and the render pipeline
// Update and Draw run on the caller's goroutine only
type Simulation struct {
	Sun     *component.Body
	Planets []*component.Body

	rng          *rand.Rand
	stars        []component.Point // nil in flicker mode
	starCount    int
	orbits       *system.OrbitSystem
	orchestrator *render.Orchestrator

	frameNumber  uint64
	onRevolution system.RevolutionFunc
}

// NewSimulation builds every body from cfg; planet phases and stars come from rng
func NewSimulation(cfg SimulationConfig, rng *rand.Rand) *Simulation {
	s := &Simulation{
		Sun:          component.NewSun(float64(cfg.Width/2), float64(cfg.Height/2)),
		rng:          rng,
		starCount:    cfg.StarCount,
		orchestrator: render.NewOrchestrator(cfg.Width, cfg.Height),
	}

	for _, spec := range cfg.Planets {
		s.Planets = append(s.Planets, newPlanet(spec, rng, cfg.TrailLength))
	}

	if cfg.StarMode == parameter.StarModeFixed {
		s.stars = renderers.StarField(rng, cfg.Width, cfg.Height, cfg.StarCount)
	}

	s.orbits = system.NewOrbitSystem(s.revolution)

	s.orchestrator.Register(renderers.NewBackgroundRenderer(), render.PriorityBackground)
	s.orchestrator.Register(renderers.NewStarsRenderer(), render.PriorityStars)
	s.orchestrator.Register(renderers.NewSunRenderer(), render.PrioritySun)
	s.orchestrator.Register(renderers.NewPlanetsRenderer(), render.PriorityPlanets)

	return s
}

func newPlanet(spec parameter.BodySpec, rng *rand.Rand, trailLength int) *component.Body {
	var angle float64
	if spec.Angle != nil {
		angle = *spec.Angle
	} else {
		angle = rng.Float64() * vmath.FullTurn
	}

	p := component.NewPlanet(spec.Name, spec.Distance, spec.Radius, core.RGBFrom(spec.Color), spec.Speed, angle, trailLength)
	for _, ms := range spec.Moons {
		m := component.NewMoon(ms.Name, ms.Distance, ms.Radius, core.RGBFrom(ms.Color), ms.Speed)
		if ms.Angle != nil {
			m.Angle = *ms.Angle
		}
		p.AddMoon(m)
	}
	return p
}

// OnRevolution sets the callback for completed planet orbits
func (s *Simulation) OnRevolution(fn system.RevolutionFunc) {
	s.onRevolution = fn
}

func (s *Simulation) revolution(index int, planet *component.Body) {
	if s.onRevolution != nil {
		s.onRevolution(index, planet)
	}
}

// Update advances all orbital angles by one frame
func (s *Simulation) Update() {
	s.orbits.Update(s.Sun, s.Planets)
}

// Draw composites the scene from already-updated state; bodies are not modified
func (s *Simulation) Draw() *render.Frame {
	frame := s.orchestrator.RenderFrame(render.RenderContext{
		Sun:       s.Sun,
		Planets:   s.Planets,
		Rand:      s.rng,
		Stars:     s.stars,
		StarCount: s.starCount,
	})
	s.frameNumber++
	return frame
}

// Frame returns the last drawn frame
func (s *Simulation) Frame() *render.Frame {
	return s.orchestrator.Frame()
}

// Ticks returns the number of Update calls so far
func (s *Simulation) Ticks() uint64 {
	return s.orbits.Ticks()
}

// Frames returns the number of Draw calls so far
func (s *Simulation) Frames() uint64 {
	return s.frameNumber
}
