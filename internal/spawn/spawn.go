// Package spawn builds the things that can appear in the world and loads the
// resources they need.
package spawn

import (
	"github.com/pkg/errors"

	"github.com/zorbgame/zorb/internal/core/handle"
	"github.com/zorbgame/zorb/internal/ecs"
	"github.com/zorbgame/zorb/internal/frame"
	"github.com/zorbgame/zorb/internal/geom"
	"github.com/zorbgame/zorb/internal/render"
	"github.com/zorbgame/zorb/internal/sprite"
	"github.com/zorbgame/zorb/internal/tilemap"
)

// Resource keys and names the spawnables depend on.
const (
	ZorbSheet    = "zorb"
	TerrainSheet = "tiles/mask"
	TerrainSet   = "mask"

	AnimBodyIdle = "body:idle"
	AnimBodyWalk = "body:walk"
	AnimFaceCute = "face:cute"
)

// DefaultZorbPos is where the zorb appears when no script says otherwise.
var DefaultZorbPos = geom.Pt(400, 400)

// LoadZorb loads the zorb sheet and resolves its animations.
func LoadZorb(lib *sprite.Library) (*frame.ZorbAssets, error) {
	id, sheet, err := lib.LoadGet(ZorbSheet)
	if err != nil {
		return nil, err
	}
	a := &frame.ZorbAssets{Sheet: id}
	for _, r := range []struct {
		name string
		dst  *sprite.AnimationID
	}{
		{AnimBodyIdle, &a.BodyIdle},
		{AnimBodyWalk, &a.BodyWalk},
		{AnimFaceCute, &a.FaceCute},
	} {
		i, ok := sheet.LookupAnimation(r.name)
		if !ok {
			return nil, errors.Errorf("sheet %q has no animation %q", ZorbSheet, r.name)
		}
		*r.dst = handle.Scoped[sprite.Animation](id, i)
	}
	return a, nil
}

// LoadTerrain loads the terrain sheet and resolves its tileset.
func LoadTerrain(lib *sprite.Library) (*frame.TerrainAssets, error) {
	id, sheet, err := lib.LoadGet(TerrainSheet)
	if err != nil {
		return nil, err
	}
	i, ok := sheet.LookupTileset(TerrainSet)
	if !ok {
		return nil, errors.Errorf("sheet %q has no tileset %q", TerrainSheet, TerrainSet)
	}
	return &frame.TerrainAssets{Sheet: id, Tileset: handle.Scoped[sprite.Tileset](id, i)}, nil
}

// Zorb spawns the player creature idling at pos.
func Zorb(a *frame.ZorbAssets, w *ecs.World, pos geom.Point, debug bool) ecs.EntityID {
	anims := ecs.NewSpriteAnims(
		ecs.NewSpriteAnim(a.Sheet, a.BodyIdle),
		ecs.NewSpriteAnim(a.Sheet, a.FaceCute),
	)
	b := ecs.Builder{}.WithPos(pos).WithSpriteAnims(&anims)
	if debug {
		b = b.WithDebug(ecs.DebugFlags{HasBox: true, BoxColor: render.Red})
	}
	return w.Spawn(b)
}

// Walk switches the zorb to its walking animations and makes it follow
// target until it arrives.
func Walk(a *frame.ZorbAssets, w *ecs.World, zorb, target ecs.EntityID) {
	anims := ecs.NewSpriteAnims(
		ecs.NewSpriteAnim(a.Sheet, a.BodyWalk),
		ecs.NewSpriteAnim(a.Sheet, a.FaceCute),
	)
	w.OverwriteSpriteAnimsFor(zorb, &anims)
	w.OverwriteFollowFor(zorb, ecs.Follow{StopAfterArriving: true, Target: target})
}

// Idle puts the zorb's body layer back to idling. The face layer keeps
// playing.
func Idle(a *frame.ZorbAssets, w *ecs.World, zorb ecs.EntityID) {
	anims := w.SpriteAnimsForMut(zorb)
	if anims == nil || anims.Len() == 0 {
		return
	}
	body := &anims.Items()[0]
	if body.Anim == a.BodyIdle {
		return
	}
	*body = ecs.NewSpriteAnim(a.Sheet, a.BodyIdle)
}

// FollowMarker spawns an invisible point to walk to.
func FollowMarker(w *ecs.World, pos geom.Point) ecs.EntityID {
	return w.Spawn(ecs.Builder{}.WithPos(pos))
}

// TerrainScript generates terrain; see scripting.Engine.GenerateTerrain.
type TerrainScript interface {
	GenerateTerrain(size int, solid func(x, y int)) (bool, error)
}

// Terrain spawns the level terrain at the origin. The script decides the
// layout when it defines one; otherwise the built-in layout is used.
func Terrain(w *ecs.World, script TerrainScript) (ecs.EntityID, error) {
	var t ecs.Terrain
	scripted := false
	if script != nil {
		var err error
		scripted, err = script.GenerateTerrain(tilemap.Size, func(x, y int) {
			t.Tiles.Set(x, y, ecs.Tile{Solid: true})
		})
		if err != nil {
			return ecs.Null, errors.Wrap(err, "generate terrain")
		}
	}
	if !scripted {
		DefaultTerrain(&t)
	}
	return w.Spawn(ecs.Builder{}.WithPos(geom.Pt(0, 0)).WithTerrain(&t)), nil
}

// DefaultTerrain draws a 50x50 walled square split into four rooms.
func DefaultTerrain(t *ecs.Terrain) {
	solid := ecs.Tile{Solid: true}
	for v := 1; v <= 50; v++ {
		t.Tiles.Set(v, 1, solid)
		t.Tiles.Set(v, 50, solid)
		t.Tiles.Set(1, v, solid)
		t.Tiles.Set(50, v, solid)
		t.Tiles.Set(25, v, solid)
		t.Tiles.Set(v, 25, solid)
	}
}
