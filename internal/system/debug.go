package system

import (
	"github.com/pkg/errors"

	coresys "github.com/zorbgame/zorb/internal/core/system"
	"github.com/zorbgame/zorb/internal/ecs"
	"github.com/zorbgame/zorb/internal/frame"
	"github.com/zorbgame/zorb/internal/geom"
)

// DebugDrawSystem outlines entities that ask for a debug box.
type DebugDrawSystem struct{}

func NewDebugDrawSystem() *DebugDrawSystem { return &DebugDrawSystem{} }

func (s *DebugDrawSystem) Name() string { return "debug-draw" }

func (s *DebugDrawSystem) Phase() coresys.Phase { return coresys.PhaseDebug }

func (s *DebugDrawSystem) Update(ctx *frame.Ctx, prev ecs.View, _ *ecs.World) error {
	side := ctx.Tuning.DebugBoxSize
	for e, pos := range prev.PosIter() {
		dbg, ok := prev.DebugFor(e)
		if !ok || !dbg.HasBox {
			continue
		}
		ctx.Canvas.SetDrawColor(dbg.BoxColor)
		box := ctx.Camera.WorldToScreenRect(geom.Rect{Origin: pos, Size: geom.Size{W: side, H: side}})
		if err := ctx.Canvas.DrawRect(box); err != nil {
			return errors.Wrapf(err, "debug box of entity %d", uint32(e))
		}
	}
	return nil
}
