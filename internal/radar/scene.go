package radar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Segment is a straight line between two center-relative points.
type Segment struct {
	From, To Point
}

// Layout is the static part of a chart: everything that depends only on the
// surface size and the label text. It is rebuilt on resize; a locale change
// only refreshes the labels.
type Layout struct {
	Viewport Viewport
	Options  Options
	Rings    [4]float64
	Axes     [AxisCount]Segment
	Labels   [AxisCount]Label
}

// NewLayout builds the static structure for a width×height surface.
func NewLayout(width, height float64, texts [AxisCount]string, m TextMeasurer, opts Options) *Layout {
	vp := NewViewport(width, height, opts)
	l := &Layout{
		Viewport: vp,
		Options:  opts,
		Rings:    vp.RingRadii(),
	}
	for i := range l.Axes {
		l.Axes[i] = Segment{To: vp.AxisEnd(i)}
	}
	l.Relabel(texts, m)
	return l
}

// Relabel replaces the label text and re-clamps the boxes. Geometry is left
// untouched.
func (l *Layout) Relabel(texts [AxisCount]string, m TextMeasurer) {
	l.Labels = l.Viewport.PlaceLabels(texts, m, l.Options)
}

// Handle is the draggable dot at one outline vertex.
type Handle struct {
	Axis   int
	Center Point
	Radius float64
}

// Frame is the dynamic part of the chart drawn for one state.
type Frame struct {
	Outline [AxisCount]Point
	Handles [AxisCount]Handle
	// Dragging is the axis under an active drag, or -1.
	Dragging int
}

// FrameFor places the outline and handles at the given vertices.
func (l *Layout) FrameFor(outline [AxisCount]Point, dragging int) Frame {
	f := Frame{Outline: outline, Dragging: dragging}
	for i, p := range outline {
		f.Handles[i] = Handle{Axis: i, Center: p, Radius: l.Options.HandleRadius}
	}
	return f
}

// HandleAt returns the handle under p, preferring the closest one.
func (f Frame) HandleAt(p Point) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for _, h := range f.Handles {
		d := p.Sub(h.Center).Len()
		if d <= h.Radius && d < bestDist {
			best, bestDist = h.Axis, d
		}
	}
	return best, best >= 0
}

// PickAxis returns the axis whose pick region contains p. The region is a
// band PickWidth wide running from the center to the axis end, with square
// ends. Where bands overlap near the center the nearest axis wins.
func (l *Layout) PickAxis(p Point) (int, bool) {
	half := l.Options.PickWidth / 2
	best, bestDist := -1, math.Inf(1)
	for i := range l.Axes {
		dir := Direction(i)
		along := p.Dot(dir)
		if along < 0 || along > l.Viewport.UsableRadius {
			continue
		}
		across := math.Abs(p.X*dir.Y - p.Y*dir.X)
		if across <= half && across < bestDist {
			best, bestDist = i, across
		}
	}
	return best, best >= 0
}

// PathData renders a closed polygon as SVG path data in surface
// coordinates.
func PathData(points []Point, origin Point) string {
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range points {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString("L")
		}
		q := p.Add(origin)
		b.WriteString(formatCoord(q.X))
		b.WriteString(",")
		b.WriteString(formatCoord(q.Y))
	}
	b.WriteString("Z")
	return b.String()
}

func formatCoord(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

func (p Point) String() string {
	return fmt.Sprintf("(%s,%s)", formatCoord(p.X), formatCoord(p.Y))
}
