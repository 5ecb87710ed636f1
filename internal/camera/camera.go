package camera

import "github.com/zorbgame/zorb/internal/geom"

// Camera is positioned somewhere in the world and maps world space to screen
// space. Pos is the world point shown at the top-left corner of the screen.
type Camera struct {
	Pos     geom.Point
	Zoom    float64
	MinZoom float64
	MaxZoom float64
}

func New(minZoom, maxZoom float64, pos geom.Point) *Camera {
	return &Camera{Pos: pos, Zoom: 1, MinZoom: minZoom, MaxZoom: maxZoom}
}

// SetZoom sets the zoom clamped to the allowed range.
func (c *Camera) SetZoom(z float64) {
	c.Zoom = clamp(z, c.MinZoom, c.MaxZoom)
}

// ChangeZoom adds delta to the zoom, clamped to the allowed range.
func (c *Camera) ChangeZoom(delta float64) {
	c.SetZoom(c.Zoom + delta)
}

// ChangeZoomAround zooms while keeping the world point under the given screen
// point fixed on screen.
func (c *Camera) ChangeZoomAround(delta float64, anchor geom.ScreenPoint) {
	before := c.ScreenToWorldPoint(anchor)
	c.ChangeZoom(delta)
	after := c.ScreenToWorldPoint(anchor)
	c.Pos = c.Pos.Add(before.Sub(after))
}

// Pan moves the camera by v world units.
func (c *Camera) Pan(v geom.Vec) {
	c.Pos = c.Pos.Add(v)
}

func (c *Camera) WorldToScreenPoint(p geom.Point) geom.ScreenPoint {
	return geom.ScreenPoint{X: (p.X - c.Pos.X) * c.Zoom, Y: (p.Y - c.Pos.Y) * c.Zoom}
}

func (c *Camera) ScreenToWorldPoint(p geom.ScreenPoint) geom.Point {
	return geom.Point{X: p.X/c.Zoom + c.Pos.X, Y: p.Y/c.Zoom + c.Pos.Y}
}

func (c *Camera) WorldToScreenRect(r geom.Rect) geom.ScreenRect {
	o := c.WorldToScreenPoint(r.Origin)
	return geom.ScreenRect{X: o.X, Y: o.Y, W: r.Size.W * c.Zoom, H: r.Size.H * c.Zoom}
}

func (c *Camera) ScreenToWorldRect(r geom.ScreenRect) geom.Rect {
	o := c.ScreenToWorldPoint(geom.ScreenPoint{X: r.X, Y: r.Y})
	return geom.Rect{Origin: o, Size: geom.Size{W: r.W / c.Zoom, H: r.H / c.Zoom}}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
