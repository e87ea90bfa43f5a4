package radar

import "math"

// Align is the horizontal text anchor of an axis label.
type Align int

const (
	AlignMiddle Align = iota
	AlignStart
	AlignEnd
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	default:
		return "middle"
	}
}

// labelNudge shifts side labels away from the axis end.
const labelNudge = 6

// TextMeasurer reports the rendered size of a label in logical units.
type TextMeasurer interface {
	Measure(text string) (width, height float64)
}

// MeasureFunc adapts a function to TextMeasurer.
type MeasureFunc func(text string) (width, height float64)

func (f MeasureFunc) Measure(text string) (float64, float64) { return f(text) }

// Label is a placed axis label. X/Y is the anchor point relative to the
// chart center; the box spans Left..Left+Width and Top..Top+Height.
type Label struct {
	Axis   int
	Text   string
	X, Y   float64
	Align  Align
	Width  float64
	Height float64
}

func (l Label) Left() float64 {
	switch l.Align {
	case AlignStart:
		return l.X
	case AlignEnd:
		return l.X - l.Width
	default:
		return l.X - l.Width/2
	}
}

func (l Label) Top() float64 { return l.Y - l.Height/2 }

// AlignFor picks the anchor for axis i: labels on the right grow rightward,
// labels on the left grow leftward and near-vertical axes are centered.
func AlignFor(i int) Align {
	c := math.Cos(AngleOf(i))
	switch {
	case c > 0.3:
		return AlignStart
	case c < -0.3:
		return AlignEnd
	default:
		return AlignMiddle
	}
}

// LabelAnchor is the anchor point for axis i, LabelGap beyond the usable
// radius, including the side nudge for start/end aligned labels.
func (v Viewport) LabelAnchor(i int, opts Options) Point {
	p := Direction(i).Scale(v.UsableRadius + opts.LabelGap)
	switch AlignFor(i) {
	case AlignStart:
		p.X += labelNudge
	case AlignEnd:
		p.X -= labelNudge
	}
	return p
}

// PlaceLabels positions one label per axis and then moves any label whose
// box leaves the surface back inside by the smallest offset. Text is never
// truncated; a label wider than the surface ends up flush with its left
// edge.
func (v Viewport) PlaceLabels(texts [AxisCount]string, m TextMeasurer, opts Options) [AxisCount]Label {
	var out [AxisCount]Label
	for i, text := range texts {
		anchor := v.LabelAnchor(i, opts)
		w, h := m.Measure(text)
		l := Label{Axis: i, Text: text, X: anchor.X, Y: anchor.Y, Align: AlignFor(i), Width: w, Height: h}
		out[i] = v.clampLabel(l)
	}
	return out
}

func (v Viewport) clampLabel(l Label) Label {
	minX, maxX := -v.Width/2, v.Width/2
	minY, maxY := -v.Height/2, v.Height/2

	var dx, dy float64
	if left := l.Left(); left < minX {
		dx = minX - left
	}
	if right := l.Left() + l.Width; right > maxX {
		dx = -(right - maxX)
	}
	if top := l.Top(); top < minY {
		dy = minY - top
	}
	if bottom := l.Top() + l.Height; bottom > maxY {
		dy = -(bottom - maxY)
	}
	l.X += dx
	l.Y += dy
	if l.Left() < minX {
		l.X += minX - l.Left()
	}
	if l.Top() < minY {
		l.Y += minY - l.Top()
	}
	return l
}
