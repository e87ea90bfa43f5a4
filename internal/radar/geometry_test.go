package radar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// 600x480: min side 480, outer 176, usable 140, min radius 35.
func testViewport() Viewport {
	return NewViewport(600, 480, DefaultOptions())
}

func TestNewViewportRadii(t *testing.T) {
	vp := testViewport()
	assert.InDelta(t, 300, vp.CenterX, eps)
	assert.InDelta(t, 240, vp.CenterY, eps)
	assert.InDelta(t, 176, vp.OuterRadius, eps)
	assert.InDelta(t, 140, vp.UsableRadius, eps)
	assert.InDelta(t, 35, vp.MinRadius, eps)
}

func TestDegenerateViewportFloorsAtZero(t *testing.T) {
	for _, size := range [][2]float64{{10, 10}, {0, 0}, {-50, 20}, {math.NaN(), 100}} {
		vp := NewViewport(size[0], size[1], DefaultOptions())
		assert.GreaterOrEqual(t, vp.OuterRadius, 0.0)
		assert.GreaterOrEqual(t, vp.UsableRadius, 0.0)
		assert.GreaterOrEqual(t, vp.MinRadius, 0.0)
		assert.Equal(t, 0, vp.Unproject(50, 50, 2), "zero usable radius must short-circuit")
	}
}

func TestFitSurface(t *testing.T) {
	opts := DefaultOptions()
	tests := []struct {
		name  string
		width float64
		wantW float64
		wantH float64
	}{
		{"not laid out", 0, 360, 288},
		{"nan", math.NaN(), 360, 288},
		{"narrow", 200, 360, 288},
		{"height follows width", 400, 400, 320},
		{"wide", 1000, 1000, 800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitSurface(tt.width, opts)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestAngleOf(t *testing.T) {
	assert.InDelta(t, -math.Pi/2, AngleOf(0), eps)
	for i := 0; i < AxisCount-1; i++ {
		assert.InDelta(t, 2*math.Pi/AxisCount, AngleOf(i+1)-AngleOf(i), eps)
	}
	// Screen y grows downward, so axis 2 points right and axis 4 points down.
	assert.InDelta(t, 1, Direction(2).X, eps)
	assert.InDelta(t, 1, Direction(4).Y, eps)
}

func TestProjectClampsVertexRadius(t *testing.T) {
	vp := testViewport()
	for i := 0; i < AxisCount; i++ {
		for v := 0; v <= 100; v++ {
			want := math.Max(vp.MinRadius, math.Min(vp.UsableRadius, vp.UsableRadius*float64(v)/100))
			assert.InDelta(t, want, vp.Project(v, i).Len(), 1e-6, "axis %d value %d", i, v)
		}
	}
}

func TestProjectRawIgnoresMinRadius(t *testing.T) {
	vp := testViewport()
	assert.InDelta(t, 0, vp.ProjectRaw(0, 3).Len(), eps)
	assert.InDelta(t, 14, vp.ProjectRaw(10, 3).Len(), 1e-6)
}

func TestUnprojectRoundTrip(t *testing.T) {
	vp := testViewport()
	floor := int(math.Ceil(vp.MinRadius / vp.UsableRadius * 100))
	for i := 0; i < AxisCount; i++ {
		for v := 0; v <= 100; v++ {
			p := vp.Project(v, i)
			got := vp.Unproject(p.X, p.Y, i)
			if v >= floor {
				assert.Equal(t, v, got, "axis %d", i)
			} else {
				assert.Equal(t, floor, got, "values under the floor land on the min radius")
			}
		}
	}
}

func TestUnprojectUsesOnlyTheAxisComponent(t *testing.T) {
	vp := testViewport()
	// 70 units along axis 2 (pointing right), far off the axis vertically.
	assert.Equal(t, 50, vp.Unproject(70, 0, 2))
	assert.Equal(t, 50, vp.Unproject(70, 55, 2))
	assert.Equal(t, 50, vp.Unproject(70, -55, 2))
	// Beyond the rim and behind the center clamp to the ends.
	assert.Equal(t, 100, vp.Unproject(900, 0, 2))
	assert.Equal(t, 25, vp.Unproject(-200, 0, 2))
}

func TestRingRadii(t *testing.T) {
	vp := testViewport()
	assert.Equal(t, [4]float64{35, 70, 105, 140}, vp.RingRadii())
}

func TestScenarioAllFiftyIsRegularOctagon(t *testing.T) {
	vp := testViewport()
	var values [AxisCount]int
	for i := range values {
		values[i] = 50
	}
	pts := vp.Outline(values)
	side := pts[0].Sub(pts[1]).Len()
	for i, p := range pts {
		assert.InDelta(t, 0.5*vp.UsableRadius, p.Len(), 1e-6)
		next := pts[(i+1)%AxisCount]
		assert.InDelta(t, side, p.Sub(next).Len(), 1e-6)
	}
}

func TestScenarioZeroSitsOnMinRadius(t *testing.T) {
	vp := testViewport()
	p := vp.Project(0, 0)
	assert.InDelta(t, vp.MinRadius, p.Len(), eps)
	require.Greater(t, p.Len(), 0.0)
	assert.InDelta(t, -vp.MinRadius, p.Y, eps, "meaning is the top axis")
}

func TestScenarioHundredSitsOnUsableRadius(t *testing.T) {
	vp := testViewport()
	p := vp.Project(100, 7)
	assert.InDelta(t, vp.UsableRadius, p.Len(), eps)
}
