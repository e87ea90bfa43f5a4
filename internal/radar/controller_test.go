package radar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type write struct{ axis, value int }

type recorder struct {
	writes []write
	values [AxisCount]int
}

func (r *recorder) SetAxisValue(axis, value int) {
	r.writes = append(r.writes, write{axis, value})
	r.values[axis] = value
}

func fifties() [AxisCount]int {
	var v [AxisCount]int
	for i := range v {
		v[i] = 50
	}
	return v
}

func testLayout() *Layout {
	return NewLayout(600, 480, labelTexts("label"), fixedMeasure(40, 16), DefaultOptions())
}

func frameFor(l *Layout, values [AxisCount]int) Frame {
	return l.FrameFor(l.Viewport.Outline(values), -1)
}

func TestPressOnHandleStartsDragWithoutWriting(t *testing.T) {
	l := testLayout()
	rec := &recorder{}
	c := NewController(rec)

	handle := l.Viewport.ToSurface(l.Viewport.Project(50, 2))
	require.True(t, c.Press(l, frameFor(l, fifties()), handle))

	axis, ok := c.Dragging()
	assert.True(t, ok)
	assert.Equal(t, 2, axis)
	assert.Empty(t, rec.writes)
}

func TestDragWritesOnlyTheDraggedAxis(t *testing.T) {
	l := testLayout()
	rec := &recorder{}
	c := NewController(rec)
	center := l.Viewport.Center()

	require.True(t, c.Press(l, frameFor(l, fifties()), center.Add(Point{70, 0})))
	c.Move(l, center.Add(Point{100, 30}))
	c.Move(l, center.Add(Point{1000, -500}))
	c.Move(l, center.Add(Point{-50, 0}))

	require.Len(t, rec.writes, 3)
	assert.Equal(t, []write{{2, 71}, {2, 100}, {2, 25}}, rec.writes)
	for _, w := range rec.writes {
		assert.Equal(t, 2, w.axis)
	}
}

func TestMovesOutsideTheSurfaceKeepDragging(t *testing.T) {
	l := testLayout()
	rec := &recorder{}
	c := NewController(rec)

	require.True(t, c.Press(l, frameFor(l, fifties()), l.Viewport.ToSurface(l.Viewport.Project(50, 0))))
	assert.True(t, c.Move(l, Point{300, -4000}))
	assert.Equal(t, []write{{0, 100}}, rec.writes)
}

func TestReleaseAnywhereEndsDrag(t *testing.T) {
	l := testLayout()
	c := NewController(&recorder{})

	require.True(t, c.Press(l, frameFor(l, fifties()), l.Viewport.ToSurface(l.Viewport.Project(50, 5))))
	c.Move(l, Point{-9999, 9999})
	s, ok := c.Release()
	require.True(t, ok)
	assert.Equal(t, Session{Axis: 5, Moves: 1}, s)
	assert.Equal(t, Idle, c.Phase())

	_, ok = c.Release()
	assert.False(t, ok, "release while idle is a no-op")
}

func TestClickOnPickRegionSetsValue(t *testing.T) {
	l := testLayout()
	rec := &recorder{}
	c := NewController(rec)

	// 0.73 of the usable radius along axis 3.
	p := l.Viewport.ToSurface(Direction(3).Scale(0.73 * l.Viewport.UsableRadius))
	require.True(t, c.Press(l, frameFor(l, fifties()), p))
	s, ok := c.Release()
	require.True(t, ok)

	assert.True(t, s.Picked)
	assert.Equal(t, []write{{3, 73}}, rec.writes)
}

func TestPickRegionToleratesOffAxisPress(t *testing.T) {
	l := testLayout()
	rec := &recorder{}
	c := NewController(rec)

	// 15 units off axis 2 (pointing right) is inside the 36-wide band.
	require.True(t, c.Press(l, frameFor(l, fifties()), l.Viewport.Center().Add(Point{112, 15})))
	assert.Equal(t, []write{{2, 80}}, rec.writes)
}

func TestPressOnSecondAxisWhileDraggingIsIgnored(t *testing.T) {
	l := testLayout()
	rec := &recorder{}
	c := NewController(rec)
	f := frameFor(l, fifties())

	require.True(t, c.Press(l, f, l.Viewport.ToSurface(l.Viewport.Project(50, 1))))
	assert.False(t, c.Press(l, f, l.Viewport.ToSurface(l.Viewport.Project(50, 6))))

	axis, _ := c.Dragging()
	assert.Equal(t, 1, axis)
	assert.Empty(t, rec.writes)
}

func TestMissedPressIsNoop(t *testing.T) {
	l := testLayout()
	rec := &recorder{}
	c := NewController(rec)

	assert.False(t, c.Press(l, frameFor(l, fifties()), l.Viewport.Center().Add(Point{130, -60})))
	assert.False(t, c.Move(l, Point{10, 10}))
	assert.Equal(t, Idle, c.Phase())
	assert.Empty(t, rec.writes)
}

func TestCancelDropsDrag(t *testing.T) {
	l := testLayout()
	c := NewController(&recorder{})
	require.True(t, c.Press(l, frameFor(l, fifties()), l.Viewport.ToSurface(l.Viewport.Project(50, 4))))
	c.Cancel()
	_, ok := c.Release()
	assert.False(t, ok)
}
