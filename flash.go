package blitfx

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Flash fades Alpha from 1 to 0 over a fixed duration. Previews restart it
// after each refresh so a re-run pass is visible even when the output did not
// change. Callers advance it with Update each frame.
type Flash struct {
	Alpha float64
	Done  bool

	tween *gween.Tween
}

// NewFlash creates a flash that starts fully visible.
func NewFlash(duration float32, fn ease.TweenFunc) *Flash {
	return &Flash{
		Alpha: 1,
		tween: gween.New(1, 0, duration, fn),
	}
}

// Update advances the fade by dt seconds.
func (f *Flash) Update(dt float32) {
	if f.Done {
		return
	}
	val, finished := f.tween.Update(dt)
	f.Alpha = float64(val)
	f.Done = finished
}

// Restart makes the flash fully visible and starts the fade again.
func (f *Flash) Restart() {
	f.tween.Reset()
	f.Alpha = 1
	f.Done = false
}
