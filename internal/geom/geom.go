// Package geom holds the 2D value types shared by the engine. World and screen
// coordinates are distinct types so a world point cannot be drawn directly.
package geom

import "math"

// Vec is a displacement in world space.
type Vec struct{ X, Y float64 }

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }
func (v Vec) Length() float64     { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector of v, or the zero vector for a zero v.
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Point is a position in world space.
type Point struct{ X, Y float64 }

func Pt(x, y float64) Point { return Point{x, y} }

func (p Point) Sub(o Point) Vec { return Vec{p.X - o.X, p.Y - o.Y} }
func (p Point) Add(v Vec) Point { return Point{p.X + v.X, p.Y + v.Y} }

// Size is a world-space extent.
type Size struct{ W, H float64 }

// Rect is a world-space rectangle anchored at its top-left corner.
type Rect struct {
	Origin Point
	Size   Size
}

func R(x, y, w, h float64) Rect { return Rect{Point{x, y}, Size{w, h}} }

// ScreenPoint is a position on the screen in pixels.
type ScreenPoint struct{ X, Y float64 }

// ScreenRect is a screen-space rectangle in pixels.
type ScreenRect struct{ X, Y, W, H float64 }

// PixelRect is an integer rectangle inside a texture.
type PixelRect struct{ X, Y, W, H int }

// Offset returns r moved by whole cells of the given size.
func (r PixelRect) Offset(cx, cy, cell int) PixelRect {
	return PixelRect{X: r.X + cx*cell, Y: r.Y + cy*cell, W: cell, H: cell}
}
