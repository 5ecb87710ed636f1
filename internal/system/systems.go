// Package system holds the systems that make up a game frame.
package system

import (
	coresys "github.com/zorbgame/zorb/internal/core/system"
	"github.com/zorbgame/zorb/internal/ecs"
	"github.com/zorbgame/zorb/internal/frame"
)

// Runner runs the game's systems over one prev/next pair.
type Runner = coresys.Runner[*frame.Ctx, ecs.View, *ecs.World]

// NewRunner registers every system. Navigation and physics run before the
// draw systems that read positions, and the debug overlay draws last.
func NewRunner(debug bool) *Runner {
	r := coresys.NewRunner[*frame.Ctx, ecs.View, *ecs.World]()
	r.Register(NewCameraSystem())
	r.Register(NewFollowSystem())
	r.Register(NewPhysicsSystem())
	r.Register(NewTerrainDrawSystem())
	r.Register(NewSpriteDrawSystem())
	if debug {
		r.Register(NewDebugDrawSystem())
	}
	return r
}
