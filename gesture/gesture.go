// Package gesture defines the input boundary of the installation: the
// gesture labels a classifier can report, the per-frame sample consumed by
// the animation state, and the Source interface drivers implement.
package gesture

import (
	"hanami/math"
)

type Gesture int

const (
	None Gesture = iota
	Fist
	OpenHand
	OneFinger
	TwoFingers
	ThreeFingers
	FourFingers
	Unknown
)

func (g Gesture) String() string {
	switch g {
	case None:
		return "none"
	case Fist:
		return "fist"
	case OpenHand:
		return "open-hand"
	case OneFinger:
		return "one-finger"
	case TwoFingers:
		return "two-fingers"
	case ThreeFingers:
		return "three-fingers"
	case FourFingers:
		return "four-fingers"
	default:
		return "unknown"
	}
}

// FingerCount reports how many extended fingers the label implies, or -1
// when the label carries no count (None, Unknown).
func (g Gesture) FingerCount() int {
	switch g {
	case Fist:
		return 0
	case OneFinger:
		return 1
	case TwoFingers:
		return 2
	case ThreeFingers:
		return 3
	case FourFingers:
		return 4
	case OpenHand:
		return 5
	default:
		return -1
	}
}

// Frame is one input sample. Pointer is normalized to [0,1] over the view,
// origin top-left. When Tracking is false the pointer value is stale and
// consumers hold their last good reading.
type Frame struct {
	Gesture  Gesture
	Pointer  math.Vec2
	Tracking bool
}

// DefaultFrame is the sample used before any source has reported: no
// gesture, pointer centered, not tracking.
func DefaultFrame() Frame {
	return Frame{Gesture: None, Pointer: math.Vec2{X: 0.5, Y: 0.5}}
}

// Source supplies one Frame per render tick. Poll must be cheap and
// non-blocking; slow drivers publish through a Mailbox instead.
type Source interface {
	Poll() Frame
	Available() bool
	Describe() string
}
