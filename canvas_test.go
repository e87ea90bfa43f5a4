package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"octalysis/internal/radar"
)

func testLayout() *radar.Layout {
	texts := [radar.AxisCount]string{"Top", "B", "Right", "D", "Bottom", "F", "Left", "H"}
	return radar.NewLayout(480, 384, texts, radar.MeasureFunc(cellMeasure), radar.DefaultOptions())
}

func TestLineGlyph(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   rune
	}{
		{"horizontal", 80, 0, '─'},
		{"vertical", 0, -80, '│'},
		{"down right", 80, 160, '╲'},
		{"up right", 80, -160, '╱'},
		{"down left", -80, 160, '╱'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lineGlyph(tt.dx, tt.dy))
		})
	}
}

func TestInsidePolygon(t *testing.T) {
	square := []radar.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	assert.True(t, insidePolygon(radar.Point{X: 5, Y: 5}, square))
	assert.False(t, insidePolygon(radar.Point{X: 15, Y: 5}, square))
	assert.False(t, insidePolygon(radar.Point{X: 5, Y: -1}, square))
}

func TestDrawChart(t *testing.T) {
	l := testLayout()
	var values [radar.AxisCount]int
	for i := range values {
		values[i] = 50
	}
	c := NewCanvas(60, 24)
	c.DrawChart(l, l.FrameFor(l.Viewport.Outline(values), -1))
	text := strings.Join(c.Lines(), "\n")

	assert.Equal(t, radar.AxisCount, strings.Count(text, "●"))
	assert.NotContains(t, text, "◉")
	for _, label := range []string{"Top", "Right", "Bottom", "Left"} {
		assert.Contains(t, text, label)
	}
	assert.Contains(t, text, "░")
	assert.Contains(t, text, "·")

	assert.Equal(t, cellAxis, c.kinds[12][30], "axes stay visible through the area")
	assert.Equal(t, cellEmpty, c.kinds[0][0])
}

func TestDrawChartMarksDraggedHandle(t *testing.T) {
	l := testLayout()
	var values [radar.AxisCount]int
	for i := range values {
		values[i] = 80
	}
	c := NewCanvas(60, 24)
	c.DrawChart(l, l.FrameFor(l.Viewport.Outline(values), 3))
	text := strings.Join(c.Lines(), "\n")
	assert.Equal(t, 1, strings.Count(text, "◉"))
	assert.Equal(t, radar.AxisCount-1, strings.Count(text, "●"))
}

func TestCanvasClipsOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 2)
	c.set(-1, 0, 'x', cellLabel)
	c.set(4, 1, 'x', cellLabel)
	c.set(1, 1, 'x', cellLabel)
	assert.Equal(t, []string{"", " x"}, c.Lines())
}

func TestRenderKeepsText(t *testing.T) {
	c := NewCanvas(5, 1)
	c.set(0, 0, 'a', cellLabel)
	c.set(1, 0, 'b', cellLabel)
	c.set(3, 0, '●', cellHandle)
	out := c.Render(darkTheme)
	assert.Len(t, out, 1)
	assert.Contains(t, out[0], "ab")
	assert.Contains(t, out[0], "●")
}
