package radar

import "time"

// DefaultTweenDuration is how long an ordinary outline change animates.
const DefaultTweenDuration = 200 * time.Millisecond

// Tween animates the outline between two shapes.
type Tween struct {
	From, To [AxisCount]Point
	Start    time.Time
	Duration time.Duration
}

// NewTween starts an animation from the currently displayed outline.
func NewTween(from, to [AxisCount]Point, now time.Time, d time.Duration) Tween {
	return Tween{From: from, To: to, Start: now, Duration: d}
}

// Snap is a tween that has already finished at to.
func Snap(to [AxisCount]Point) Tween {
	return Tween{From: to, To: to}
}

// Progress is the eased completion in [0,1].
func (t Tween) Progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	x := float64(now.Sub(t.Start)) / float64(t.Duration)
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return cubicInOut(x)
}

func (t Tween) Done(now time.Time) bool {
	return t.Duration <= 0 || !now.Before(t.Start.Add(t.Duration))
}

// At returns the outline displayed at now.
func (t Tween) At(now time.Time) [AxisCount]Point {
	k := t.Progress(now)
	if k >= 1 {
		return t.To
	}
	var out [AxisCount]Point
	for i := range out {
		out[i] = t.From[i].Lerp(t.To[i], k)
	}
	return out
}

func cubicInOut(x float64) float64 {
	x *= 2
	if x <= 1 {
		return x * x * x / 2
	}
	x -= 2
	return (x*x*x + 2) / 2
}
