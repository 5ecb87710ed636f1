// Package frame holds what every system sees during one frame.
package frame

import (
	"go.uber.org/zap"

	"github.com/zorbgame/zorb/internal/camera"
	"github.com/zorbgame/zorb/internal/core/event"
	"github.com/zorbgame/zorb/internal/ecs"
	"github.com/zorbgame/zorb/internal/input"
	"github.com/zorbgame/zorb/internal/render"
	"github.com/zorbgame/zorb/internal/sprite"
)

// Ctx is rebuilt by the host every frame. Systems communicate only through
// the world buffers and this context.
type Ctx struct {
	NowMs   uint64
	DeltaMs uint64
	DeltaS  float64

	ScreenW, ScreenH int

	Input   *input.State
	Canvas  render.Canvas
	Camera  *camera.Camera
	Sprites *sprite.Library
	Assets  *Assets
	Bus     *event.Bus
	Log     *zap.Logger
	Tuning  Tuning
}

// Tuning holds gameplay constants read from config.
type Tuning struct {
	// FollowSpeed is in world units per second.
	FollowSpeed float64
	// A follower closer than FollowSpeed*DeltaS*ArriveFactor snaps onto its
	// target.
	ArriveFactor float64
	// PanSpeed is the camera speed in world units per second.
	PanSpeed float64
	// ZoomSpeed is the zoom change per second.
	ZoomSpeed float64
	// TileWorldSize is the world size of one terrain tile.
	TileWorldSize float64
	// DebugBoxSize is the side of the debug box in world units.
	DebugBoxSize float64
}

func DefaultTuning() Tuning {
	return Tuning{
		FollowSpeed:   500,
		ArriveFactor:  1.5,
		PanSpeed:      300,
		ZoomSpeed:     1,
		TileWorldSize: 32,
		DebugBoxSize:  25,
	}
}

// Assets are the resolved resource ids of everything that can be spawned.
// A nil entry was not loaded.
type Assets struct {
	Zorb    *ZorbAssets
	Terrain *TerrainAssets
}

type ZorbAssets struct {
	Sheet    sprite.SheetID
	BodyIdle sprite.AnimationID
	BodyWalk sprite.AnimationID
	FaceCute sprite.AnimationID
}

type TerrainAssets struct {
	Sheet   sprite.SheetID
	Tileset sprite.TilesetID
}

// Arrived is emitted when a follower reaches its target and stops following.
type Arrived struct {
	Follower ecs.EntityID
	Target   ecs.EntityID
}
