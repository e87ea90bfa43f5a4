package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"octalysis/internal/i18n"
	"octalysis/internal/radar"
	"octalysis/internal/state"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestChart(t *testing.T) (*Chart, *state.Store, *fakeClock) {
	t.Helper()
	tr, err := i18n.New(i18n.English)
	require.NoError(t, err)
	store := state.NewStore(state.Default())
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewChart(store, tr)
	c.now = clock.Now
	c.Mount(60, 24)
	t.Cleanup(c.Unmount)
	return c, store, clock
}

func TestChartDefaultsToRegularOctagon(t *testing.T) {
	c, _, clock := newTestChart(t)
	f := c.Frame(clock.Now())
	for i, p := range f.Outline {
		assert.InDelta(t, 46, p.Len(), 1e-9, "axis %d", i)
	}
	assert.Equal(t, -1, f.Dragging)
	assert.False(t, c.Animating(clock.Now()), "first state is shown without animation")
}

func TestChartTweensOrdinaryChanges(t *testing.T) {
	c, store, clock := newTestChart(t)
	start := clock.Now()

	store.UpdateDriver(state.Meaning, 100)
	require.True(t, c.Animating(start))
	assert.InDelta(t, 46, c.Frame(start).Outline[0].Len(), 1e-9)

	mid := c.Frame(start.Add(radar.DefaultTweenDuration / 2)).Outline[0].Len()
	assert.Greater(t, mid, 46.0)
	assert.Less(t, mid, 92.0)

	end := start.Add(radar.DefaultTweenDuration)
	assert.InDelta(t, 92, c.Frame(end).Outline[0].Len(), 1e-9)
	assert.False(t, c.Animating(end))
}

func TestChartSnapsWhileDragging(t *testing.T) {
	c, store, clock := newTestChart(t)
	require.True(t, c.PressCell(30, 9))
	require.True(t, c.MoveCell(30, 4))
	assert.Equal(t, 100, store.Snapshot().Value(state.Meaning))
	assert.False(t, c.Animating(clock.Now()))
	f := c.Frame(clock.Now())
	assert.InDelta(t, 92, f.Outline[0].Len(), 1e-9)
	assert.Equal(t, 0, f.Dragging)

	d, from, to, ok := c.Release()
	require.True(t, ok)
	assert.Equal(t, state.Meaning, d)
	assert.Equal(t, 50, from)
	assert.Equal(t, 100, to)
	assert.False(t, c.Dragging())
}

func TestChartUnmountStopsFollowingStore(t *testing.T) {
	c, store, _ := newTestChart(t)
	c.Unmount()
	store.UpdateDriver(state.Ownership, 10)
	assert.Equal(t, 50, c.Values()[state.Ownership.Index()])
}

func TestChartUnmountCancelsDrag(t *testing.T) {
	c, store, _ := newTestChart(t)
	require.True(t, c.PressCell(30, 9))
	c.Unmount()
	assert.False(t, c.Dragging())
	assert.False(t, c.MoveCell(30, 4))
	assert.Equal(t, 50, store.Snapshot().Value(state.Meaning))
}

func TestChartMinimumSurface(t *testing.T) {
	c, _, _ := newTestChart(t)
	c.Resize(0, 0)
	vp := c.Layout().Viewport
	assert.Equal(t, 360.0, vp.Width)
	assert.Equal(t, 288.0, vp.Height)
	cols, rows := c.Size()
	assert.Equal(t, 45, cols)
	assert.Equal(t, 18, rows)
}

func TestCellPoint(t *testing.T) {
	assert.Equal(t, radar.Point{X: 4, Y: 8}, CellPoint(0, 0))
	assert.Equal(t, radar.Point{X: 244, Y: 152}, CellPoint(30, 9))
}
