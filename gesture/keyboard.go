package gesture

import (
	"hanami/core"
	"hanami/math"
)

// Keys is the slice of the window surface the keyboard simulator reads.
// *core.Window satisfies it.
type Keys interface {
	IsKeyPressed(key int) bool
	CursorNorm() (float32, float32)
}

// KeyboardSource stands in for a camera-based classifier during development
// and rehearsal: hold F for fist, O for open hand, 1-4 for finger counts,
// tap T to toggle tracking. The cursor plays the pointer.
type KeyboardSource struct {
	keys     Keys
	tracking bool
	tWasDown bool
}

func NewKeyboardSource(keys Keys) *KeyboardSource {
	return &KeyboardSource{keys: keys, tracking: true}
}

func (k *KeyboardSource) Poll() Frame {
	tDown := k.keys.IsKeyPressed(core.KeyT)
	if tDown && !k.tWasDown {
		k.tracking = !k.tracking
	}
	k.tWasDown = tDown

	g := None
	switch {
	case k.keys.IsKeyPressed(core.KeyF):
		g = Fist
	case k.keys.IsKeyPressed(core.KeyO):
		g = OpenHand
	case k.keys.IsKeyPressed(core.Key1):
		g = OneFinger
	case k.keys.IsKeyPressed(core.Key2):
		g = TwoFingers
	case k.keys.IsKeyPressed(core.Key3):
		g = ThreeFingers
	case k.keys.IsKeyPressed(core.Key4):
		g = FourFingers
	}

	x, y := k.keys.CursorNorm()
	return Frame{Gesture: g, Pointer: math.Vec2{X: x, Y: y}, Tracking: k.tracking}
}

func (k *KeyboardSource) Available() bool {
	return true
}

func (k *KeyboardSource) Describe() string {
	return "keyboard simulator"
}
