// Package term draws frames onto a terminal through tcell. Every cell stands
// for a CellW x CellH block of screen pixels and is painted with the color
// found under its center.
package term

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/zorbgame/zorb/internal/geom"
	"github.com/zorbgame/zorb/internal/render"
)

// alpha below which a texture pixel counts as transparent
const alphaCutoff = 0x80

// Canvas implements render.Canvas on a tcell.Screen.
type Canvas struct {
	screen       tcell.Screen
	cellW, cellH int
	color        render.Color
}

func NewCanvas(screen tcell.Screen, cellW, cellH int) *Canvas {
	return &Canvas{screen: screen, cellW: cellW, cellH: cellH, color: render.White}
}

// ScreenSize is the terminal size in screen pixels.
func (c *Canvas) ScreenSize() (w, h int) {
	cols, rows := c.screen.Size()
	return cols * c.cellW, rows * c.cellH
}

// CellCenter maps a terminal cell to the screen pixel at its center.
func (c *Canvas) CellCenter(col, row int) geom.ScreenPoint {
	return geom.ScreenPoint{
		X: (float64(col) + 0.5) * float64(c.cellW),
		Y: (float64(row) + 0.5) * float64(c.cellH),
	}
}

func (c *Canvas) Copy(tex render.Texture, src geom.PixelRect, dst geom.ScreenRect) error {
	img, ok := tex.(*Image)
	if !ok {
		return errors.Errorf("term: cannot draw texture of type %T", tex)
	}
	if src.W <= 0 || src.H <= 0 {
		return nil
	}
	c.cells(dst, func(col, row int, p geom.ScreenPoint) {
		sx := src.X + int((p.X-dst.X)/dst.W*float64(src.W))
		sy := src.Y + int((p.Y-dst.Y)/dst.H*float64(src.H))
		r, g, b, a := img.img.At(sx, sy).RGBA()
		if a>>8 < alphaCutoff {
			return
		}
		c.paint(col, row, render.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
	})
	return nil
}

func (c *Canvas) SetDrawColor(col render.Color) { c.color = col }

// DrawRect outlines dst one cell wide.
func (c *Canvas) DrawRect(dst geom.ScreenRect) error {
	c0, r0, c1, r1, ok := c.span(dst)
	if !ok {
		return nil
	}
	for col := c0; col <= c1; col++ {
		c.paint(col, r0, c.color)
		c.paint(col, r1, c.color)
	}
	for row := r0; row <= r1; row++ {
		c.paint(c0, row, c.color)
		c.paint(c1, row, c.color)
	}
	return nil
}

func (c *Canvas) FillRect(dst geom.ScreenRect) error {
	c.cells(dst, func(col, row int, _ geom.ScreenPoint) {
		c.paint(col, row, c.color)
	})
	return nil
}

func (c *Canvas) Clear() {
	c.screen.Fill(' ', CellStyle(render.Black))
}

// CellStyle is how a painted cell of color col is styled.
func CellStyle(col render.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B)))
}

func (c *Canvas) paint(col, row int, color render.Color) {
	c.screen.SetContent(col, row, ' ', nil, CellStyle(color))
}

// cells calls fn for every on-screen cell whose center lies inside r.
func (c *Canvas) cells(r geom.ScreenRect, fn func(col, row int, center geom.ScreenPoint)) {
	c0, r0, c1, r1, ok := c.span(r)
	if !ok {
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			p := c.CellCenter(col, row)
			if p.X < r.X || p.X >= r.X+r.W || p.Y < r.Y || p.Y >= r.Y+r.H {
				continue
			}
			fn(col, row, p)
		}
	}
}

// span is the range of cells r touches, clipped to the terminal.
func (c *Canvas) span(r geom.ScreenRect) (c0, r0, c1, r1 int, ok bool) {
	if r.W <= 0 || r.H <= 0 {
		return 0, 0, 0, 0, false
	}
	cols, rows := c.screen.Size()
	c0 = max(0, int(math.Floor(r.X/float64(c.cellW))))
	r0 = max(0, int(math.Floor(r.Y/float64(c.cellH))))
	c1 = min(cols-1, int(math.Ceil((r.X+r.W)/float64(c.cellW)))-1)
	r1 = min(rows-1, int(math.Ceil((r.Y+r.H)/float64(c.cellH)))-1)
	return c0, r0, c1, r1, c0 <= c1 && r0 <= r1
}

// Image is a decoded texture.
type Image struct {
	img image.Image
}

func NewImage(img image.Image) *Image { return &Image{img: img} }

func (i *Image) Size() (int, int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}
