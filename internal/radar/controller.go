package radar

// Phase is the controller's drag state.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// ValueWriter receives the values produced by pointer interaction. It is
// the only way the controller affects application state.
type ValueWriter interface {
	SetAxisValue(axis, value int)
}

// Session describes a finished drag.
type Session struct {
	Axis  int
	Moves int
	// Picked is true when the drag began on an axis pick region rather
	// than on a handle; such a press already wrote a value.
	Picked bool
}

// Controller turns pointer press/move/release into axis values. Only one
// axis can be dragged at a time. Once a drag starts, moves and the release
// are accepted wherever the pointer is, so a drag is never lost when the
// pointer leaves the chart.
type Controller struct {
	w      ValueWriter
	phase  Phase
	axis   int
	moves  int
	picked bool
}

func NewController(w ValueWriter) *Controller {
	return &Controller{w: w, axis: -1}
}

func (c *Controller) Phase() Phase { return c.phase }

// Dragging reports the axis under an active drag.
func (c *Controller) Dragging() (int, bool) {
	if c.phase != Dragging {
		return -1, false
	}
	return c.axis, true
}

// Press handles a button press at surface point p. A press on a handle
// starts a drag of that handle; a press inside an axis pick region starts a
// drag and immediately sets the axis from the press position. Presses that
// miss everything, and presses while another drag is active, are ignored.
func (c *Controller) Press(l *Layout, f Frame, p Point) bool {
	if c.phase == Dragging || l == nil {
		return false
	}
	local := l.Viewport.ToLocal(p)
	if i, ok := f.HandleAt(local); ok {
		c.begin(i, false)
		return true
	}
	if i, ok := l.PickAxis(local); ok {
		c.begin(i, true)
		c.write(l, local)
		return true
	}
	return false
}

// Move handles pointer motion at surface point p. Outside a drag it does
// nothing.
func (c *Controller) Move(l *Layout, p Point) bool {
	if c.phase != Dragging || l == nil {
		return false
	}
	c.moves++
	c.write(l, l.Viewport.ToLocal(p))
	return true
}

// Release ends the active drag regardless of where the pointer is.
func (c *Controller) Release() (Session, bool) {
	if c.phase != Dragging {
		return Session{}, false
	}
	s := Session{Axis: c.axis, Moves: c.moves, Picked: c.picked}
	c.reset()
	return s, true
}

// Cancel drops an active drag without producing a session, e.g. when the
// surface is torn down mid-drag.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) begin(axis int, picked bool) {
	c.phase = Dragging
	c.axis = axis
	c.moves = 0
	c.picked = picked
}

func (c *Controller) reset() {
	c.phase = Idle
	c.axis = -1
	c.moves = 0
	c.picked = false
}

func (c *Controller) write(l *Layout, local Point) {
	if c.w == nil {
		return
	}
	c.w.SetAxisValue(c.axis, l.Viewport.Unproject(local.X, local.Y, c.axis))
}
