package system

import (
	"github.com/pkg/errors"

	"github.com/zorbgame/zorb/internal/core/event"
	coresys "github.com/zorbgame/zorb/internal/core/system"
	"github.com/zorbgame/zorb/internal/ecs"
	"github.com/zorbgame/zorb/internal/frame"
)

// FollowSystem walks followers towards their target at Tuning.FollowSpeed.
// A follower that would overshoot next frame snaps onto the target, and one
// with StopAfterArriving drops its Follow and emits frame.Arrived.
type FollowSystem struct{}

func NewFollowSystem() *FollowSystem { return &FollowSystem{} }

func (s *FollowSystem) Name() string { return "follow" }

func (s *FollowSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *FollowSystem) Update(ctx *frame.Ctx, prev ecs.View, next *ecs.World) error {
	step := ctx.Tuning.FollowSpeed * ctx.DeltaS

	for follower, f := range prev.FollowIter() {
		from, ok := prev.PosFor(follower)
		if !ok {
			return errors.Errorf("follower %d has no position", uint32(follower))
		}
		if !prev.Alive(f.Target) {
			return errors.Errorf("follower %d targets missing entity %d", uint32(follower), uint32(f.Target))
		}
		to, ok := prev.PosFor(f.Target)
		if !ok {
			return errors.Errorf("follow target %d has no position", uint32(f.Target))
		}

		diff := to.Sub(from)
		if diff.Length() >= step*ctx.Tuning.ArriveFactor {
			next.SetPosFor(follower, from.Add(diff.Normalize().Scale(step)))
			continue
		}

		next.SetPosFor(follower, to)
		if !f.StopAfterArriving {
			continue
		}
		// the follow may have been replaced or its target moved this frame
		if cur, ok := next.FollowFor(follower); !ok || cur != f {
			continue
		}
		if moved, ok := next.PosFor(f.Target); ok && moved != to {
			continue
		}
		next.UnsetFollowFor(follower)
		event.Emit(ctx.Bus, frame.Arrived{Follower: follower, Target: f.Target})
	}
	return nil
}

// PhysicsSystem integrates velocity: pos = prev pos + vel * dt.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem { return &PhysicsSystem{} }

func (s *PhysicsSystem) Name() string { return "physics" }

func (s *PhysicsSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *PhysicsSystem) Update(ctx *frame.Ctx, prev ecs.View, next *ecs.World) error {
	for e, vel := range prev.VelIter() {
		pos, ok := prev.PosFor(e)
		if !ok {
			return errors.Errorf("entity %d has velocity but no position", uint32(e))
		}
		next.SetPosFor(e, pos.Add(vel.Scale(ctx.DeltaS)))
	}
	return nil
}
