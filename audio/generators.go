package audio

import (
	gomath "math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// breezeGenerator is the tree-mode layer: low-passed noise with a slow
// swell, air moving through branches. Loops seamlessly (the swell period
// divides squarely into the loop the mixer restarts).
type breezeGenerator struct {
	sr   beep.SampleRate
	rng  *rand.Rand
	pos  int
	last float64 // one-pole low-pass state
}

func newBreezeGenerator(sr beep.SampleRate) *breezeGenerator {
	return &breezeGenerator{
		sr:  sr,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *breezeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	const alpha = 0.035 // low-pass cut-off; smaller = deeper rumble
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		noise := g.rng.Float64()*2 - 1
		g.last += alpha * (noise - g.last)

		// 9-second swell, never fully quiet so the room keeps breathing.
		swell := 0.55 + 0.45*gomath.Sin(2*gomath.Pi*t/9)
		sample := swell * (g.last*0.42 + 0.05*gomath.Sin(2*gomath.Pi*85*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *breezeGenerator) Err() error { return nil }

// droneGenerator is the galaxy-mode layer: a detuned low sine stack with a
// faint shimmer partial that comes and goes on a 7-second cycle.
type droneGenerator struct {
	sr  beep.SampleRate
	pos int
}

func newDroneGenerator(sr beep.SampleRate) *droneGenerator {
	return &droneGenerator{sr: sr}
}

func (g *droneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.14 * gomath.Sin(2*gomath.Pi*55.0*t)
		sample += 0.11 * gomath.Sin(2*gomath.Pi*55.5*t)
		sample += 0.08 * gomath.Sin(2*gomath.Pi*110.3*t)

		shimmer := 0.5 + 0.5*gomath.Sin(2*gomath.Pi*t/7)
		sample += 0.035 * shimmer * gomath.Sin(2*gomath.Pi*660.0*t)

		// Slow breathing on the whole stack
		sample *= 0.7 + 0.3*gomath.Sin(2*gomath.Pi*t/13)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *droneGenerator) Err() error { return nil }

// chimeGenerator is the one-shot reveal bell: two inharmonic partials with a
// fast attack and exponential decay. Drains after about two seconds.
type chimeGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
}

func newChimeGenerator(sr beep.SampleRate) *chimeGenerator {
	return &chimeGenerator{
		sr:    sr,
		total: sr.N(time.Millisecond * 2200),
	}
}

func (g *chimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	const attack = 0.005 // seconds
	const tau = 0.65     // decay constant, seconds
	for i := range samples {
		if g.pos >= g.total {
			return i, false
		}
		t := float64(g.pos) / float64(g.sr)

		env := gomath.Exp(-t / tau)
		if t < attack {
			env *= t / attack
		}

		sample := env * (0.22*gomath.Sin(2*gomath.Pi*880.0*t) +
			0.12*gomath.Sin(2*gomath.Pi*1761.5*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *chimeGenerator) Err() error { return nil }
