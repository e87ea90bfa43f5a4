package state

import "math"

// DriverScore maps a 0–100 drive onto the 1–4 scoring scale. Values up to
// 25 score 1, values from 100 score 4, linear in between. This is unrelated
// to the radar chart's linear value-to-radius mapping.
func DriverScore(v int) float64 {
	t := (float64(v) - 25) / 75
	t = math.Max(0, math.Min(1, t))
	return 1 + 3*t
}

// TotalScore is the mean driver score across all eight drives.
func TotalScore(s AppState) float64 {
	var sum float64
	for _, v := range s.Drives {
		sum += DriverScore(v)
	}
	return sum / DriverCount
}
