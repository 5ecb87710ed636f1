// Package render defines the drawing surface the engine talks to. Backends
// live in sub-packages; the engine only asks to copy a texture region to a
// screen rectangle and to outline or fill rectangles.
package render

import "github.com/zorbgame/zorb/internal/geom"

type Color struct{ R, G, B, A uint8 }

func RGB(r, g, b uint8) Color { return Color{r, g, b, 0xFF} }

var (
	Black = RGB(0, 0, 0)
	White = RGB(0xFF, 0xFF, 0xFF)
	Red   = RGB(0xFF, 0, 0)
)

// Texture is an image owned by a backend.
type Texture interface {
	Size() (w, h int)
}

// TextureLoader creates backend textures from image files.
type TextureLoader interface {
	LoadTexture(path string) (Texture, error)
}

// Canvas is the drawing surface for one frame.
type Canvas interface {
	Copy(tex Texture, src geom.PixelRect, dst geom.ScreenRect) error
	SetDrawColor(c Color)
	DrawRect(dst geom.ScreenRect) error
	FillRect(dst geom.ScreenRect) error
	Clear()
}
