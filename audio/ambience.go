// Package audio synthesizes the installation's soundscape: a breeze layer
// while the tree stands, a drone layer once the blossom disperses, and a
// small chime when a photo reveals. Everything is generated — no sample
// files ship with the installation.
package audio

import (
	"fmt"
	gomath "math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Ambience manages the two looping layers and one-shot effects. The blend
// between layers follows the expansion factor: equal-power crossfade so the
// transition through 0.5 keeps constant perceived loudness.
type Ambience struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	breezeVol   *effects.Volume
	droneVol    *effects.Volume
	initialized bool
	muted       bool
	blend       float32
}

// NewAmbience creates the manager. Call Start to open the audio device.
func NewAmbience() *Ambience {
	return &Ambience{
		mixer: &beep.Mixer{},
	}
}

// Start opens the speaker and begins both loops at the current blend.
// Failure leaves the installation silent but running; callers log and move on.
func (a *Ambience) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	breeze, drone := blendGains(a.blend)
	if a.muted {
		breeze, drone = 0, 0
	}
	a.breezeVol = newVolume(newBreezeGenerator(sampleRate), breeze)
	a.droneVol = newVolume(newDroneGenerator(sampleRate), drone)
	a.mixer.Add(a.breezeVol)
	a.mixer.Add(a.droneVol)

	speaker.Play(a.mixer)
	a.initialized = true
	return nil
}

// SetBlend crossfades the layers for the given expansion factor (0 = tree,
// 1 = galaxy). Safe to call every frame; cheap when nothing is playing.
func (a *Ambience) SetBlend(expansion float32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.blend = clamp01(expansion)
	if !a.initialized || a.muted {
		return
	}

	breeze, drone := blendGains(a.blend)
	speaker.Lock()
	setGain(a.breezeVol, breeze)
	setGain(a.droneVol, drone)
	speaker.Unlock()
}

// SetMuted silences or restores both layers without tearing them down.
func (a *Ambience) SetMuted(muted bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.muted = muted
	if !a.initialized {
		return
	}

	breeze, drone := blendGains(a.blend)
	if muted {
		breeze, drone = 0, 0
	}
	speaker.Lock()
	setGain(a.breezeVol, breeze)
	setGain(a.droneVol, drone)
	speaker.Unlock()
}

// Muted reports the current mute state.
func (a *Ambience) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}

// PlayReveal rings the reveal chime. The streamer drains on its own and the
// mixer drops it afterwards.
func (a *Ambience) PlayReveal() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized || a.muted {
		return
	}

	speaker.Lock()
	a.mixer.Add(newChimeGenerator(sampleRate))
	speaker.Unlock()
}

// Close silences everything. The speaker itself stays open; beep has no
// teardown, clearing the mixer is the accepted shutdown.
func (a *Ambience) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}
	speaker.Lock()
	a.mixer.Clear()
	speaker.Unlock()
	a.initialized = false
}

// blendGains maps the expansion factor to equal-power layer gains.
func blendGains(expansion float32) (breeze, drone float64) {
	t := float64(clamp01(expansion))
	breeze = gomath.Cos(t * gomath.Pi / 2)
	drone = gomath.Sin(t * gomath.Pi / 2)
	return breeze, drone
}

// newVolume wraps a streamer in an exponential gain stage. beep volumes are
// exponents (gain = Base^Volume), so a linear gain g maps to log2(g).
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2, Silent: gain <= 0}
	if gain > 0 {
		v.Volume = gomath.Log2(gain)
	}
	return v
}

func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = gomath.Log2(gain)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
