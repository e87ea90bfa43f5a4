package main

import (
	"math"
	"strings"

	"octalysis/internal/radar"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellRing
	cellAxis
	cellArea
	cellEdge
	cellHandle
	cellActive
	cellLabel
)

// Canvas is a character grid the chart is rasterized into. One cell covers
// charWidth×charHeight logical units of the chart surface.
type Canvas struct {
	cols  int
	rows  int
	runes [][]rune
	kinds [][]cellKind
}

type point struct {
	X, Y int
}

func NewCanvas(cols, rows int) *Canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	c := &Canvas{cols: cols, rows: rows}
	c.runes = make([][]rune, rows)
	c.kinds = make([][]cellKind, rows)
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", cols))
		c.kinds[y] = make([]cellKind, cols)
	}
	return c
}

func (c *Canvas) isValidPos(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.cols && y < c.rows
}

func (c *Canvas) set(x, y int, r rune, k cellKind) {
	if c.isValidPos(x, y) {
		c.runes[y][x] = r
		c.kinds[y][x] = k
	}
}

// setUnder writes only over cells of a lower layer.
func (c *Canvas) setUnder(x, y int, r rune, k cellKind) {
	if c.isValidPos(x, y) && c.kinds[y][x] < k {
		c.set(x, y, r, k)
	}
}

func toCell(p radar.Point) point {
	return point{int(math.Floor(p.X / charWidth)), int(math.Floor(p.Y / charHeight))}
}

// DrawChart rasterizes the static layout and one frame, back to front:
// rings, axes, filled area, outline edges, handles, labels.
func (c *Canvas) DrawChart(l *radar.Layout, f radar.Frame) {
	if l == nil {
		return
	}
	center := l.Viewport.Center()

	for _, r := range l.Rings {
		c.drawRing(center, r)
	}
	for _, a := range l.Axes {
		c.drawLine(a.From.Add(center), a.To.Add(center), cellAxis)
	}

	var poly [radar.AxisCount]radar.Point
	for i, p := range f.Outline {
		poly[i] = p.Add(center)
	}
	c.fillPolygon(poly[:])
	for i := range poly {
		c.drawLine(poly[i], poly[(i+1)%len(poly)], cellEdge)
	}

	for _, h := range f.Handles {
		cell := toCell(h.Center.Add(center))
		if h.Axis == f.Dragging {
			c.set(cell.X, cell.Y, '◉', cellActive)
		} else {
			c.set(cell.X, cell.Y, '●', cellHandle)
		}
	}

	for _, lb := range l.Labels {
		c.drawLabel(center, lb)
	}
}

func (c *Canvas) drawRing(center radar.Point, r float64) {
	if r <= 0 {
		return
	}
	steps := int(2*math.Pi*r/charWidth) * 2
	steps = max(steps, 16)
	for k := 0; k < steps; k++ {
		a := 2 * math.Pi * float64(k) / float64(steps)
		cell := toCell(center.Add(radar.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}))
		c.setUnder(cell.X, cell.Y, '·', cellRing)
	}
}

// drawLine walks the segment in half-cell steps and stamps a glyph matching
// its on-screen slope.
func (c *Canvas) drawLine(from, to radar.Point, k cellKind) {
	glyph := lineGlyph(to.X-from.X, to.Y-from.Y)
	d := to.Sub(from)
	steps := int(math.Max(math.Abs(d.X)/charWidth, math.Abs(d.Y)/charHeight)*2) + 1
	for s := 0; s <= steps; s++ {
		cell := toCell(from.Lerp(to, float64(s)/float64(steps)))
		c.setUnder(cell.X, cell.Y, glyph, k)
	}
}

func lineGlyph(dx, dy float64) rune {
	cx, cy := math.Abs(dx/charWidth), math.Abs(dy/charHeight)
	switch {
	case cy <= cx*0.4:
		return '─'
	case cx <= cy*0.4:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func (c *Canvas) fillPolygon(poly []radar.Point) {
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			if c.kinds[y][x] <= cellRing && insidePolygon(CellPoint(x, y), poly) {
				c.set(x, y, '░', cellArea)
			}
		}
	}
}

// insidePolygon is the even-odd ray casting test.
func insidePolygon(p radar.Point, poly []radar.Point) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func (c *Canvas) drawLabel(center radar.Point, lb radar.Label) {
	x := int(math.Round((center.X + lb.Left()) / charWidth))
	y := int(math.Floor((center.Y + lb.Y) / charHeight))
	for _, r := range lb.Text {
		c.set(x, y, r, cellLabel)
		x++
	}
}

// Lines returns the grid as plain text.
func (c *Canvas) Lines() []string {
	out := make([]string, c.rows)
	for y, row := range c.runes {
		out[y] = strings.TrimRight(string(row), " ")
	}
	return out
}

// Render returns the grid with each run of same-kind cells styled from t.
func (c *Canvas) Render(t Theme) []string {
	out := make([]string, c.rows)
	for y := range c.runes {
		var b strings.Builder
		start := 0
		for x := 1; x <= c.cols; x++ {
			if x < c.cols && c.kinds[y][x] == c.kinds[y][start] {
				continue
			}
			run := string(c.runes[y][start:x])
			if k := c.kinds[y][start]; k == cellEmpty {
				b.WriteString(run)
			} else {
				b.WriteString(t.cellStyle(k).Render(run))
			}
			start = x
		}
		out[y] = b.String()
	}
	return out
}
