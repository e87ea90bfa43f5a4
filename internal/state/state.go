// Package state holds the assessment state and the store that publishes it.
package state

import "math"

const (
	MinValue     = 0
	MaxValue     = 100
	DefaultValue = 50
)

// AppState is an immutable snapshot of everything the user edits. It is a
// plain value: copying it copies the drives and comments too, so a published
// snapshot can never be changed by a later update.
type AppState struct {
	ProjectName string
	Drives      [DriverCount]int
	Comments    [DriverCount]string
}

// Default returns the state used at first launch and after a reset.
func Default() AppState {
	var s AppState
	for i := range s.Drives {
		s.Drives[i] = DefaultValue
	}
	return s
}

func (s AppState) Value(d Driver) int {
	if !d.Valid() {
		return 0
	}
	return s.Drives[d]
}

func (s AppState) Comment(d Driver) string {
	if !d.Valid() {
		return ""
	}
	return s.Comments[d]
}

// Normalized returns a copy with every drive forced into [0,100].
func (s AppState) Normalized() AppState {
	for i, v := range s.Drives {
		s.Drives[i] = ClampValue(v)
	}
	return s
}

// NormalizeValue maps arbitrary numeric input onto a driver value: NaN and
// infinities become 0, everything else is rounded and clamped to [0,100].
func NormalizeValue(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return ClampValue(int(math.Round(v)))
}

func ClampValue(v int) int {
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}
