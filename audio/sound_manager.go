package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBuffer  = 100 * time.Millisecond
	chimeDuration  = 400 * time.Millisecond
	chimeDecayRate = 9.0  // envelope e-folds per second
	chimeVolume    = -2.5 // base-2 attenuation, about 1/6 amplitude
)

// SoundManager plays a short chime when a planet completes a revolution
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences pending chimes and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

// PlayOrbit chimes the pitch assigned to the planet at index
func (sm *SoundManager) PlayOrbit(index int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	chime, err := newChime(chimeFrequency(index))
	if err != nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(chime)
	speaker.Unlock()
}

// newChime builds a decaying sine of fixed length at freq
func newChime(freq float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	decayed := &DecayEnvelope{Streamer: tone, sr: sampleRate, rate: chimeDecayRate}
	volume := &effects.Volume{Streamer: decayed, Base: 2, Volume: chimeVolume}
	return beep.Take(sampleRate.N(chimeDuration), volume), nil
}

// DecayEnvelope scales a streamer by exp(-rate*t)
type DecayEnvelope struct {
	Streamer beep.Streamer
	sr       beep.SampleRate
	rate     float64
	pos      int
}

func (e *DecayEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(e.pos) / float64(e.sr)
		env := math.Exp(-t * e.rate)
		samples[i][0] *= env
		samples[i][1] *= env
		e.pos++
	}
	return n, ok
}

func (e *DecayEnvelope) Err() error {
	return e.Streamer.Err()
}
