package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zorbgame/zorb/internal/geom"
)

func TestZoomClamped(t *testing.T) {
	c := New(0.5, 3, geom.Point{})
	c.SetZoom(10)
	assert.Equal(t, 3.0, c.Zoom)
	c.ChangeZoom(-100)
	assert.Equal(t, 0.5, c.Zoom)
}

func TestWorldScreenRoundTrip(t *testing.T) {
	c := New(0.5, 3, geom.Pt(100, 50))
	c.SetZoom(2)

	r := geom.R(110, 60, 25, 25)
	s := c.WorldToScreenRect(r)
	assert.Equal(t, geom.ScreenRect{X: 20, Y: 20, W: 50, H: 50}, s)
	assert.Equal(t, r, c.ScreenToWorldRect(s))
}

func TestZoomAroundKeepsAnchor(t *testing.T) {
	c := New(0.5, 3, geom.Pt(0, 0))
	anchor := geom.ScreenPoint{X: 200, Y: 100}
	before := c.ScreenToWorldPoint(anchor)

	c.ChangeZoomAround(1, anchor)

	after := c.ScreenToWorldPoint(anchor)
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)
	assert.Equal(t, 2.0, c.Zoom)
}
