package main

import (
	"math"
	"time"

	"github.com/charmbracelet/x/ansi"

	"octalysis/internal/i18n"
	"octalysis/internal/radar"
	"octalysis/internal/state"
)

// Chart binds the radar geometry to the state store and the translator. It
// owns the layout for the current pane size, the drag controller and the
// outline animation.
type Chart struct {
	store *state.Store
	tr    *i18n.Translator
	opts  radar.Options
	now   func() time.Time

	layout  *radar.Layout
	ctrl    *radar.Controller
	tween   radar.Tween
	values  [radar.AxisCount]int
	mounted bool
	primed  bool
	cols    int
	rows    int

	dragFrom    int
	unsubscribe []func()
}

func NewChart(store *state.Store, tr *i18n.Translator) *Chart {
	opts := radar.DefaultOptions()
	// A handle has to reach the center of the cell it is drawn in.
	opts.HandleRadius = math.Hypot(charWidth, charHeight)/2 + 0.5
	c := &Chart{
		store:    store,
		tr:       tr,
		opts:     opts,
		now:      time.Now,
		dragFrom: -1,
	}
	c.ctrl = radar.NewController(c)
	return c
}

// Mount lays the chart out for a pane of paneCols×paneRows cells and starts
// following the store and the locale.
func (c *Chart) Mount(paneCols, paneRows int) {
	c.relayout(paneCols, paneRows)
	if c.mounted {
		return
	}
	c.mounted = true
	c.unsubscribe = append(c.unsubscribe,
		c.store.Subscribe(c.onState),
		c.tr.Subscribe(c.onLocale),
	)
}

// Resize rebuilds the layout. Values are kept and the outline jumps to its
// new position.
func (c *Chart) Resize(paneCols, paneRows int) {
	if !c.mounted {
		c.Mount(paneCols, paneRows)
		return
	}
	c.relayout(paneCols, paneRows)
	c.tween = radar.Snap(c.layout.Viewport.Outline(c.values))
}

// Unmount stops all subscriptions and drops any drag in progress.
func (c *Chart) Unmount() {
	for _, fn := range c.unsubscribe {
		fn()
	}
	c.unsubscribe = nil
	c.ctrl.Cancel()
	c.dragFrom = -1
	c.mounted = false
	c.primed = false
}

func (c *Chart) relayout(paneCols, paneRows int) {
	container := math.Min(float64(paneCols)*charWidth, float64(paneRows)*charHeight/c.opts.HeightFactor)
	w, h := radar.FitSurface(container, c.opts)
	c.cols = int(math.Ceil(w / charWidth))
	c.rows = int(math.Ceil(h / charHeight))
	c.layout = radar.NewLayout(w, h, c.labels(), radar.MeasureFunc(cellMeasure), c.opts)
}

func (c *Chart) labels() [radar.AxisCount]string {
	var out [radar.AxisCount]string
	for i, d := range state.Drivers {
		out[i] = c.tr.T(d.LabelKey())
	}
	return out
}

// cellMeasure sizes text in logical units of the terminal grid.
func cellMeasure(text string) (float64, float64) {
	return float64(ansi.StringWidth(text)) * charWidth, charHeight
}

func (c *Chart) onState(st state.AppState) {
	c.values = st.Drives
	if c.layout == nil {
		return
	}
	target := c.layout.Viewport.Outline(c.values)
	if _, dragging := c.ctrl.Dragging(); dragging || !c.primed {
		c.primed = true
		c.tween = radar.Snap(target)
		return
	}
	now := c.now()
	c.tween = radar.NewTween(c.tween.At(now), target, now, radar.DefaultTweenDuration)
}

func (c *Chart) onLocale(i18n.Locale) {
	if c.layout != nil {
		c.layout.Relabel(c.labels(), radar.MeasureFunc(cellMeasure))
	}
}

// SetAxisValue writes a value produced by pointer interaction.
func (c *Chart) SetAxisValue(axis, value int) {
	c.store.UpdateDriver(state.Drivers[axis], float64(value))
}

func (c *Chart) Layout() *radar.Layout { return c.layout }

// Size is the chart surface in cells.
func (c *Chart) Size() (cols, rows int) { return c.cols, c.rows }

func (c *Chart) Values() [radar.AxisCount]int { return c.values }

// Frame is the outline and handles to draw at now.
func (c *Chart) Frame(now time.Time) radar.Frame {
	axis, ok := c.ctrl.Dragging()
	if !ok {
		axis = -1
	}
	return c.layout.FrameFor(c.tween.At(now), axis)
}

func (c *Chart) Animating(now time.Time) bool {
	return c.layout != nil && !c.tween.Done(now)
}

func (c *Chart) Dragging() bool {
	return c.ctrl.Phase() == radar.Dragging
}

// CellPoint is the surface point at the center of a grid cell.
func CellPoint(col, row int) radar.Point {
	return radar.Point{X: (float64(col) + 0.5) * charWidth, Y: (float64(row) + 0.5) * charHeight}
}

// PressCell forwards a left-button press on grid cell col,row.
func (c *Chart) PressCell(col, row int) bool {
	if c.layout == nil {
		return false
	}
	before := c.values
	if !c.ctrl.Press(c.layout, c.Frame(c.now()), CellPoint(col, row)) {
		return false
	}
	axis, _ := c.ctrl.Dragging()
	c.dragFrom = before[axis]
	return true
}

// MoveCell forwards pointer motion. Cells outside the grid are accepted so
// a drag can leave the chart.
func (c *Chart) MoveCell(col, row int) bool {
	return c.ctrl.Move(c.layout, CellPoint(col, row))
}

// Release ends a drag and reports the value change it made.
func (c *Chart) Release() (d state.Driver, from, to int, ok bool) {
	s, ok := c.ctrl.Release()
	if !ok {
		return 0, 0, 0, false
	}
	d = state.Drivers[s.Axis]
	from, to = c.dragFrom, c.values[s.Axis]
	c.dragFrom = -1
	return d, from, to, true
}
