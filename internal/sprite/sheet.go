// Package sprite loads sprite sheets: one texture, its cels, and the named
// animations and tilesets built from those cels. Names are resolved once at
// load time into ids scoped to the owning sheet.
package sprite

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"

	"github.com/zorbgame/zorb/internal/animation"
	"github.com/zorbgame/zorb/internal/core/handle"
	"github.com/zorbgame/zorb/internal/geom"
	"github.com/zorbgame/zorb/internal/render"
	"github.com/zorbgame/zorb/internal/tilemap"
)

type (
	SheetID     = handle.ID[*Sheet]
	AnimationID = handle.ID[Animation]
	TilesetID   = handle.ID[Tileset]
)

// Cel is one packed image in the sheet texture.
type Cel struct {
	// Where the cel is in the sheet texture.
	Tex geom.PixelRect
	// Where the cel sits relative to its untrimmed source frame.
	Src geom.PixelRect
}

// Animation is a named layered animation. Each keyframe value lists the cel
// indices drawn during that keyframe, one per layer.
type Animation struct {
	Name   string
	Layers map[string]uint8
	Frames *animation.Animation[[]uint16]
}

// UpdateCursor advances c and returns the cels of the active keyframe.
func (a *Animation) UpdateCursor(c *animation.Cursor, now uint64) ([]uint16, bool) {
	return a.Frames.Update(c, now)
}

// UpdateCursorLoop advances c, restarting the animation when it ends.
func (a *Animation) UpdateCursorLoop(c *animation.Cursor, now uint64) []uint16 {
	return a.Frames.UpdateLoop(c, now)
}

// Tileset is a 12x4 grid of auto-tiling sub-tiles stored in one cel.
type Tileset struct {
	Name     string
	GridSize int
	Cel      uint16
}

// Sheet is a loaded sprite sheet.
type Sheet struct {
	Texture    render.Texture
	Cels       []Cel
	animations []Animation
	animIndex  map[string]uint16
	tilesets   []Tileset
	tileIndex  map[string]uint16
}

// LookupAnimation returns the sheet-local index of a named animation.
func (s *Sheet) LookupAnimation(name string) (uint16, bool) {
	i, ok := s.animIndex[normName(name)]
	return i, ok
}

// LookupTileset returns the sheet-local index of a named tileset.
func (s *Sheet) LookupTileset(name string) (uint16, bool) {
	i, ok := s.tileIndex[normName(name)]
	return i, ok
}

// AnimationID resolves a name to an id scoped to sheet. Asking for an
// animation the sheet does not have is a bug in the caller.
func (s *Sheet) AnimationID(sheet SheetID, name string) AnimationID {
	i, ok := s.LookupAnimation(name)
	if !ok {
		panic(fmt.Sprintf("sprite: invalid animation %q", name))
	}
	return handle.Scoped[Animation](sheet, i)
}

// TilesetID resolves a name to an id scoped to sheet.
func (s *Sheet) TilesetID(sheet SheetID, name string) TilesetID {
	i, ok := s.LookupTileset(name)
	if !ok {
		panic(fmt.Sprintf("sprite: invalid tileset %q", name))
	}
	return handle.Scoped[Tileset](sheet, i)
}

// Animation returns the animation at a sheet-local index.
func (s *Sheet) Animation(i uint16) *Animation { return &s.animations[i] }

// Tileset returns the tileset at a sheet-local index.
func (s *Sheet) Tileset(i uint16) *Tileset { return &s.tilesets[i] }

func (s *Sheet) NumAnimations() int { return len(s.animations) }

func (s *Sheet) NumTilesets() int { return len(s.tilesets) }

// TexRectFor returns the texture region of the sub-tile that matches a
// neighbor mask.
func (s *Sheet) TexRectFor(ts *Tileset, mask tilemap.NeighborMask) geom.PixelRect {
	off := tilemap.OffsetFor(mask)
	return s.Cels[ts.Cel].Tex.Offset(int(off.X), int(off.Y), ts.GridSize)
}

// normName keeps names typed in source and names exported by tools (which
// may be decomposed) comparable.
func normName(s string) string { return norm.NFC.String(s) }

// build turns a decoded resource document into a Sheet.
func build(f *SheetFile, tex render.Texture) (*Sheet, error) {
	s := &Sheet{
		Texture:   tex,
		Cels:      make([]Cel, len(f.Cels)),
		animIndex: make(map[string]uint16, len(f.Animations)),
		tileIndex: make(map[string]uint16, len(f.Tilesets)),
	}
	for i, c := range f.Cels {
		s.Cels[i] = Cel{Tex: c.Tex.pixels(), Src: c.Src.pixels()}
	}

	if len(f.Animations) > 0xFFFF || len(f.Tilesets) > 0xFFFF {
		return nil, errors.New("too many animations or tilesets")
	}

	// dense ids follow name order so they do not depend on map iteration
	for _, name := range sortedKeys(f.Animations) {
		af := f.Animations[name]
		if len(af.Keyframes) == 0 {
			return nil, errors.Errorf("animation %q has no keyframes", name)
		}
		kfs := make([]animation.Keyframe[[]uint16], len(af.Keyframes))
		for i, k := range af.Keyframes {
			for _, cel := range k.Cels {
				if int(cel) >= len(s.Cels) {
					return nil, errors.Errorf("animation %q keyframe %d: cel %d out of range", name, i, cel)
				}
			}
			kfs[i] = animation.NewKeyframe(k.Duration, append([]uint16(nil), k.Cels...))
		}
		layers := make(map[string]uint8, len(af.Layers))
		for i, l := range af.Layers {
			layers[normName(l)] = uint8(i)
		}
		n := normName(name)
		s.animIndex[n] = uint16(len(s.animations))
		s.animations = append(s.animations, Animation{Name: n, Layers: layers, Frames: animation.New(kfs)})
	}

	for _, name := range sortedKeys(f.Tilesets) {
		tf := f.Tilesets[name]
		if tf.GridSize == 0 {
			return nil, errors.Errorf("tileset %q has no grid size", name)
		}
		if int(tf.Cel) >= len(s.Cels) {
			return nil, errors.Errorf("tileset %q: cel %d out of range", name, tf.Cel)
		}
		n := normName(name)
		s.tileIndex[n] = uint16(len(s.tilesets))
		s.tilesets = append(s.tilesets, Tileset{Name: n, GridSize: int(tf.GridSize), Cel: tf.Cel})
	}
	return s, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
