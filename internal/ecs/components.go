package ecs

import (
	"fmt"

	"github.com/zorbgame/zorb/internal/animation"
	"github.com/zorbgame/zorb/internal/geom"
	"github.com/zorbgame/zorb/internal/render"
	"github.com/zorbgame/zorb/internal/sprite"
	"github.com/zorbgame/zorb/internal/tilemap"
)

// Component types. Every component is a plain value without pointers, so
// copying a store copies the world.

type Pos = geom.Point

type Vel = geom.Vec

// Follow makes an entity walk towards Target.
type Follow struct {
	StopAfterArriving bool
	Target            EntityID
}

type DebugFlags struct {
	HasBox   bool
	BoxColor render.Color
}

// MaxAnimsPerEntity bounds the layered animations one entity can play.
const MaxAnimsPerEntity = 4

// SpriteAnim is one animation playing on an entity.
type SpriteAnim struct {
	Sheet  sprite.SheetID
	Anim   sprite.AnimationID
	Cursor animation.Cursor
}

func NewSpriteAnim(sheet sprite.SheetID, anim sprite.AnimationID) SpriteAnim {
	return SpriteAnim{Sheet: sheet, Anim: anim}
}

// SpriteAnims is a fixed-capacity list of SpriteAnim, drawn in order.
type SpriteAnims struct {
	items [MaxAnimsPerEntity]SpriteAnim
	n     int
}

func NewSpriteAnims(anims ...SpriteAnim) SpriteAnims {
	var s SpriteAnims
	for _, a := range anims {
		s.Push(a)
	}
	return s
}

// Push appends a. More than MaxAnimsPerEntity animations panics.
func (s *SpriteAnims) Push(a SpriteAnim) {
	if s.n == MaxAnimsPerEntity {
		panic(fmt.Sprintf("ecs: more than %d sprite animations", MaxAnimsPerEntity))
	}
	s.items[s.n] = a
	s.n++
}

func (s *SpriteAnims) Len() int { return s.n }

// Items returns the animations in s. The slice aliases s.
func (s *SpriteAnims) Items() []SpriteAnim { return s.items[:s.n] }

// Tile is one terrain cell.
type Tile struct {
	Solid bool
}

func IsSolid(t Tile) bool { return t.Solid }

type Terrain struct {
	Tiles tilemap.TileMap[Tile]
}
