package system

import (
	coresys "github.com/zorbgame/zorb/internal/core/system"
	"github.com/zorbgame/zorb/internal/ecs"
	"github.com/zorbgame/zorb/internal/frame"
	"github.com/zorbgame/zorb/internal/geom"
	"github.com/zorbgame/zorb/internal/input"
)

// CameraSystem pans the camera with W/A/S/D and zooms around the mouse with
// Z/X. It only touches the camera.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem { return &CameraSystem{} }

func (s *CameraSystem) Name() string { return "camera" }

func (s *CameraSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *CameraSystem) Update(ctx *frame.Ctx, _ ecs.View, _ *ecs.World) error {
	in := ctx.Input
	pan := ctx.Tuning.PanSpeed * ctx.DeltaS

	var v geom.Vec
	if in.Key(input.KeyW).Down {
		v.Y -= pan
	}
	if in.Key(input.KeyS).Down {
		v.Y += pan
	}
	if in.Key(input.KeyA).Down {
		v.X -= pan
	}
	if in.Key(input.KeyD).Down {
		v.X += pan
	}
	ctx.Camera.Pan(v)

	zoom := ctx.Tuning.ZoomSpeed * ctx.DeltaS
	if in.Key(input.KeyZ).Down {
		ctx.Camera.ChangeZoomAround(zoom, in.MousePos)
	}
	if in.Key(input.KeyX).Down {
		ctx.Camera.ChangeZoomAround(-zoom, in.MousePos)
	}
	return nil
}
