package system

import (
	"github.com/pkg/errors"

	coresys "github.com/zorbgame/zorb/internal/core/system"
	"github.com/zorbgame/zorb/internal/ecs"
	"github.com/zorbgame/zorb/internal/frame"
	"github.com/zorbgame/zorb/internal/geom"
	"github.com/zorbgame/zorb/internal/tilemap"
)

// TerrainDrawSystem draws every solid terrain tile with the auto-tiling
// sub-tile picked from its solid neighbors. Terrain is placed at its
// entity's position, or the origin.
type TerrainDrawSystem struct{}

func NewTerrainDrawSystem() *TerrainDrawSystem { return &TerrainDrawSystem{} }

func (s *TerrainDrawSystem) Name() string { return "terrain-draw" }

func (s *TerrainDrawSystem) Phase() coresys.Phase { return coresys.PhaseRender }

func (s *TerrainDrawSystem) Update(ctx *frame.Ctx, prev ecs.View, _ *ecs.World) error {
	if ctx.Assets == nil || ctx.Assets.Terrain == nil {
		return nil
	}
	sheet, ts := ctx.Sprites.Tileset(ctx.Assets.Terrain.Tileset)
	size := ctx.Tuning.TileWorldSize

	for e, terrain := range prev.TerrainIter() {
		origin, _ := prev.PosFor(e)
		for y := 0; y < tilemap.Size; y++ {
			for x := 0; x < tilemap.Size; x++ {
				if !terrain.Tiles.Get(x, y).Solid {
					continue
				}
				world := geom.R(origin.X+float64(x)*size, origin.Y+float64(y)*size, size, size)
				dst := ctx.Camera.WorldToScreenRect(world)
				if offScreen(ctx, dst) {
					continue
				}
				mask := terrain.Tiles.FilterNeighbors(x, y, ecs.IsSolid)
				if err := ctx.Canvas.Copy(sheet.Texture, sheet.TexRectFor(ts, mask), dst); err != nil {
					return errors.Wrapf(err, "draw tile (%d, %d)", x, y)
				}
			}
		}
	}
	return nil
}

func offScreen(ctx *frame.Ctx, r geom.ScreenRect) bool {
	if ctx.ScreenW <= 0 || ctx.ScreenH <= 0 {
		return false
	}
	return r.X+r.W < 0 || r.Y+r.H < 0 || r.X > float64(ctx.ScreenW) || r.Y > float64(ctx.ScreenH)
}

// SpriteDrawSystem loops every sprite animation and draws the active cels of
// each layer at the entity position plus the cel's source offset.
type SpriteDrawSystem struct{}

func NewSpriteDrawSystem() *SpriteDrawSystem { return &SpriteDrawSystem{} }

func (s *SpriteDrawSystem) Name() string { return "sprite-draw" }

func (s *SpriteDrawSystem) Phase() coresys.Phase { return coresys.PhaseRender }

func (s *SpriteDrawSystem) Update(ctx *frame.Ctx, prev ecs.View, next *ecs.World) error {
	for e, anims := range prev.SpriteAnimsIter() {
		pos, ok := prev.PosFor(e)
		if !ok {
			return errors.Errorf("entity %d has sprite animations but no position", uint32(e))
		}
		nextAnims := next.SpriteAnimsForMut(e)

		for i, a := range anims.Items() {
			sheet, anim := ctx.Sprites.Animation(a.Anim)
			cursor := a.Cursor
			cels := anim.UpdateCursorLoop(&cursor, ctx.NowMs)

			// only carry the cursor over if the slot still plays this animation
			if nextAnims != nil && i < nextAnims.Len() {
				if na := &nextAnims.Items()[i]; na.Anim == a.Anim && na.Sheet == a.Sheet {
					na.Cursor = cursor
				}
			}

			for _, ci := range cels {
				cel := sheet.Cels[ci]
				world := geom.R(pos.X+float64(cel.Src.X), pos.Y+float64(cel.Src.Y), float64(cel.Src.W), float64(cel.Src.H))
				if err := ctx.Canvas.Copy(sheet.Texture, cel.Tex, ctx.Camera.WorldToScreenRect(world)); err != nil {
					return errors.Wrapf(err, "draw entity %d cel %d", uint32(e), ci)
				}
			}
		}
	}
	return nil
}
