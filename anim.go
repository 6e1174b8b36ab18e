package charts

import (
	"time"

	"github.com/fogleman/ease"
)

// Curve shapes the raw animation fraction. Any of the easing
// functions from fogleman/ease fits.
type Curve func(float64) float64

type Animation struct {
	Duration time.Duration
	Curve    Curve
}

func DefaultAnimation() Animation {
	return Animation{
		Duration: 1500 * time.Millisecond,
		Curve:    ease.OutCubic,
	}
}

// At maps the elapsed time since the animation started to the
// progress value handed to the painters.
func (a Animation) At(elapsed time.Duration) float64 {
	if a.Duration <= 0 {
		return 1
	}
	t := Clamp(float64(elapsed) / float64(a.Duration))
	if a.Curve == nil {
		return ease.Linear(t)
	}
	return Clamp(a.Curve(t))
}

func (a Animation) Done(elapsed time.Duration) bool {
	return elapsed >= a.Duration
}

// Clamp keeps a progress value inside [0,1].
func Clamp(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
