// Package radar computes radar chart layout and turns pointer input on the
// chart back into axis values.
//
// All coordinates are logical surface units. Points returned by the
// projection helpers are relative to the chart center with y growing
// downward, which is what both the terminal grid and image backends use.
package radar

import "math"

// AxisCount is the number of axes on the chart.
const AxisCount = 8

// Options controls how a surface is turned into chart geometry.
type Options struct {
	Padding        float64
	LabelPadding   float64 // space reserved outside the shape for labels
	LabelGap       float64 // distance of labels from the shape edge
	HeightFactor   float64
	MinWidth       float64
	MinHeight      float64
	MinRadiusRatio float64
	PickWidth      float64 // width of the invisible pick region along each axis
	HandleRadius   float64
}

func DefaultOptions() Options {
	return Options{
		Padding:        64,
		LabelPadding:   36,
		LabelGap:       16,
		HeightFactor:   0.8,
		MinWidth:       360,
		MinHeight:      288,
		MinRadiusRatio: 0.25,
		PickWidth:      36,
		HandleRadius:   7,
	}
}

// Point is a 2-D point or vector in logical units.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Viewport is the derived geometry of one layout. It is recomputed wholesale
// whenever the surface size changes and is never persisted.
type Viewport struct {
	CenterX, CenterY float64
	Width, Height    float64
	OuterRadius      float64
	UsableRadius     float64
	MinRadius        float64
}

// FitSurface picks the surface size for a container. A container that has
// not been laid out yet (zero, negative or non-finite width) falls back to
// the minimum size. Height follows the width through HeightFactor.
func FitSurface(containerWidth float64, opts Options) (width, height float64) {
	width = opts.MinWidth
	if isFinite(containerWidth) && containerWidth > width {
		width = containerWidth
	}
	height = math.Max(opts.MinHeight, math.Round(width*opts.HeightFactor))
	return width, height
}

// NewViewport lays out a chart on a width×height surface. Radii floor at 0,
// so a degenerate surface still yields a usable (if empty) viewport.
func NewViewport(width, height float64, opts Options) Viewport {
	if !isFinite(width) || width < 0 {
		width = 0
	}
	if !isFinite(height) || height < 0 {
		height = 0
	}
	outer := math.Max(0, math.Min(width, height)/2-opts.Padding)
	usable := math.Max(0, outer-opts.LabelPadding)
	return Viewport{
		CenterX:      width / 2,
		CenterY:      height / 2,
		Width:        width,
		Height:       height,
		OuterRadius:  outer,
		UsableRadius: usable,
		MinRadius:    usable * opts.MinRadiusRatio,
	}
}

// AngleOf is the direction of axis i in radians: axis 0 points up and the
// following axes proceed clockwise.
func AngleOf(i int) float64 {
	return -math.Pi/2 + float64(i)*2*math.Pi/AxisCount
}

// Direction is the unit vector of axis i.
func Direction(i int) Point {
	a := AngleOf(i)
	return Point{math.Cos(a), math.Sin(a)}
}

// Center is the chart center in surface coordinates.
func (v Viewport) Center() Point { return Point{v.CenterX, v.CenterY} }

// ToLocal converts a surface point into center-relative coordinates.
func (v Viewport) ToLocal(p Point) Point { return p.Sub(v.Center()) }

// ToSurface converts a center-relative point into surface coordinates.
func (v Viewport) ToSurface(p Point) Point { return p.Add(v.Center()) }

// ProjectRaw maps value to a point on axis i without the min-radius floor.
func (v Viewport) ProjectRaw(value, i int) Point {
	return Direction(i).Scale(v.UsableRadius * float64(value) / 100)
}

// Project maps value to the polygon vertex on axis i. The radius is clamped
// to [MinRadius, UsableRadius] so a zero value never collapses onto the
// center, where the axis direction would be lost.
func (v Viewport) Project(value, i int) Point {
	return Direction(i).Scale(v.VertexRadius(value))
}

// VertexRadius is the clamped distance of a value's vertex from the center.
func (v Viewport) VertexRadius(value int) float64 {
	return clamp(v.UsableRadius*float64(value)/100, v.MinRadius, v.UsableRadius)
}

// Unproject turns a center-relative pointer position into a value for axis
// i. Only the component along the axis direction counts, so the pointer may
// drift sideways off the axis without changing the result.
func (v Viewport) Unproject(x, y float64, i int) int {
	if v.UsableRadius <= 0 {
		return 0
	}
	proj := Point{x, y}.Dot(Direction(i))
	proj = clamp(proj, v.MinRadius, v.UsableRadius)
	return int(math.Round(proj / v.UsableRadius * 100))
}

// RingRadii returns the four grid ring radii. Rings ignore MinRadius.
func (v Viewport) RingRadii() [4]float64 {
	var out [4]float64
	for k := range out {
		out[k] = v.UsableRadius * float64(k+1) / 4
	}
	return out
}

// AxisEnd is the outer end of axis line i.
func (v Viewport) AxisEnd(i int) Point {
	return Direction(i).Scale(v.UsableRadius)
}

// Outline returns the clamped vertices for the given values in axis order.
func (v Viewport) Outline(values [AxisCount]int) [AxisCount]Point {
	var pts [AxisCount]Point
	for i, value := range values {
		pts[i] = v.Project(value, i)
	}
	return pts
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
