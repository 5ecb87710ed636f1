// Package game is the seam between the host loop and the game rules: Init
// builds the game, Step runs one frame, Close releases it.
package game

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/zorbgame/zorb/internal/camera"
	"github.com/zorbgame/zorb/internal/config"
	"github.com/zorbgame/zorb/internal/core/event"
	"github.com/zorbgame/zorb/internal/ecs"
	"github.com/zorbgame/zorb/internal/frame"
	"github.com/zorbgame/zorb/internal/geom"
	"github.com/zorbgame/zorb/internal/input"
	"github.com/zorbgame/zorb/internal/render"
	"github.com/zorbgame/zorb/internal/scripting"
	"github.com/zorbgame/zorb/internal/spawn"
	"github.com/zorbgame/zorb/internal/sprite"
	"github.com/zorbgame/zorb/internal/system"
)

// State is everything that is double-buffered between frames: the world
// and the ids of the entities the rules care about. Null means not spawned.
type State struct {
	World   *ecs.World
	Zorb    ecs.EntityID
	Terrain ecs.EntityID
	Marker  ecs.EntityID
}

func newState(c ecs.Capacities) State {
	return State{World: ecs.New(c)}
}

// CopyFrom makes s a deep copy of src.
func (s *State) CopyFrom(src *State) {
	s.World.CopyFrom(src.World)
	s.Zorb = src.Zorb
	s.Terrain = src.Terrain
	s.Marker = src.Marker
}

// Frame is what the host hands the game every frame.
type Frame struct {
	NowMs   uint64
	DeltaMs uint64

	ScreenW, ScreenH int

	Input  *input.State
	Canvas render.Canvas
}

// Options configure Init.
type Options struct {
	Config   *config.Config
	Textures render.TextureLoader
	Log      *zap.Logger
}

// Game owns all game memory between Init and Close.
type Game struct {
	cfg *config.Config
	log *zap.Logger

	prev, next State

	sprites *sprite.Library
	assets  frame.Assets
	camera  *camera.Camera
	bus     *event.Bus
	runner  *system.Runner
	script  *scripting.Engine
	tuning  frame.Tuning

	leftDown bool
	frames   uint64
}

// Init loads every resource and builds empty prev and next states. Any load
// failure aborts.
func Init(opts Options) (*Game, error) {
	cfg := opts.Config
	log := opts.Log

	g := &Game{
		cfg:     cfg,
		log:     log,
		sprites: sprite.NewLibrary(cfg.Resources.Root, opts.Textures, log),
		bus:     event.NewBus(),
		runner:  system.NewRunner(cfg.Render.DebugOverlay),
		tuning: frame.Tuning{
			FollowSpeed:   cfg.Navigation.FollowSpeed,
			ArriveFactor:  cfg.Navigation.ArriveFactor,
			PanSpeed:      cfg.Camera.PanSpeed,
			ZoomSpeed:     cfg.Camera.ZoomSpeed,
			TileWorldSize: cfg.Render.TileSize,
			DebugBoxSize:  frame.DefaultTuning().DebugBoxSize,
		},
	}

	var err error
	if g.assets.Terrain, err = spawn.LoadTerrain(g.sprites); err != nil {
		return nil, errors.Wrap(err, "load terrain resources")
	}
	if g.assets.Zorb, err = spawn.LoadZorb(g.sprites); err != nil {
		return nil, errors.Wrap(err, "load zorb resources")
	}

	if g.script, err = scripting.NewEngine(cfg.Resources.Scripts, log); err != nil {
		return nil, errors.Wrap(err, "load scripts")
	}

	g.camera = camera.New(cfg.Camera.MinZoom, cfg.Camera.MaxZoom, geom.Pt(0, 0))
	g.camera.SetZoom(cfg.Camera.Zoom)

	caps := ecs.Capacities{Entities: cfg.ECS.MaxEntities, Terrain: cfg.ECS.MaxTerrain}
	g.prev = newState(caps)
	g.next = newState(caps)

	event.Subscribe(g.bus, g.onArrived)

	log.Info("game initialized",
		zap.Int("sheets", g.sprites.Len()),
		zap.Strings("systems", g.runner.Names()),
		zap.Int("max_entities", caps.Entities),
		zap.String("on_error", cfg.Scheduler.OnError),
	)
	return g, nil
}

// Step runs one frame. It reports false once the player asked to quit. A
// failing system ends the frame early; depending on scheduler.on_error the
// partial frame is either discarded or kept, and the error is returned for
// the host to decide whether to go on.
func (g *Game) Step(f Frame) (bool, error) {
	in := f.Input
	if in.Quit || in.Key(input.KeyEscape).Down {
		return false, nil
	}

	ctx := &frame.Ctx{
		NowMs:   f.NowMs,
		DeltaMs: f.DeltaMs,
		DeltaS:  float64(f.DeltaMs) / 1000,
		ScreenW: f.ScreenW,
		ScreenH: f.ScreenH,
		Input:   in,
		Canvas:  f.Canvas,
		Camera:  g.camera,
		Sprites: g.sprites,
		Assets:  &g.assets,
		Bus:     g.bus,
		Log:     g.log,
		Tuning:  g.tuning,
	}
	g.frames++

	// last frame's events land in this frame's next state
	g.bus.SwapBuffers()
	g.bus.DispatchAll()

	err := g.applyInput(in)
	if err == nil {
		err = g.runner.Tick(ctx, g.prev.World, g.next.World)
	}
	if err != nil {
		g.fail()
		return true, err
	}

	g.prev.CopyFrom(&g.next)
	return true, nil
}

func (g *Game) fail() {
	if g.cfg.Scheduler.OnError == config.OnErrorCommit {
		g.prev.CopyFrom(&g.next)
		return
	}
	g.next.CopyFrom(&g.prev)
	g.bus.Rewind()
}

// applyInput writes the player's intent into next before systems run.
func (g *Game) applyInput(in *input.State) error {
	if g.prev.Terrain == ecs.Null {
		id, err := spawn.Terrain(g.next.World, g.script)
		if err != nil {
			return err
		}
		g.next.Terrain = id
	}

	if in.Button(input.MouseRight).Down && g.prev.Zorb == ecs.Null {
		pos := spawn.DefaultZorbPos
		if x, y, ok := g.script.SpawnPoint(); ok {
			pos = geom.Pt(x, y)
		}
		g.next.Zorb = spawn.Zorb(g.assets.Zorb, g.next.World, pos, g.cfg.Render.DebugOverlay)
		g.log.Info("zorb spawned", zap.Uint32("entity", g.next.Zorb.Uint32()), zap.Float64("x", pos.X), zap.Float64("y", pos.Y))
	}

	left := in.Button(input.MouseLeft)
	pressed := left.Down && !g.leftDown
	g.leftDown = left.Down
	if pressed && g.prev.Zorb != ecs.Null {
		target := g.camera.ScreenToWorldPoint(left.Pos)
		if g.prev.Marker == ecs.Null {
			g.next.Marker = spawn.FollowMarker(g.next.World, target)
		} else {
			g.next.World.SetPosFor(g.prev.Marker, target)
		}
		spawn.Walk(g.assets.Zorb, g.next.World, g.prev.Zorb, g.next.Marker)
	}
	return nil
}

func (g *Game) onArrived(e frame.Arrived) {
	g.log.Info("arrived",
		zap.Uint32("follower", e.Follower.Uint32()),
		zap.Uint32("target", e.Target.Uint32()),
	)
	if e.Follower != g.next.Zorb {
		return
	}
	// a new walk started since
	if _, walking := g.next.World.FollowFor(e.Follower); walking {
		return
	}
	spawn.Idle(g.assets.Zorb, g.next.World, e.Follower)
}

// Close releases the game. The Game must not be used afterwards.
func (g *Game) Close() error {
	g.script.Close()
	g.prev.World.Reset()
	g.next.World.Reset()
	g.log.Info("game closed", zap.Uint64("frames", g.frames))
	return nil
}

// Prev is the last committed state.
func (g *Game) Prev() *State { return &g.prev }

func (g *Game) Camera() *camera.Camera { return g.camera }

// Frames counts Step calls that ran a frame.
func (g *Game) Frames() uint64 { return g.frames }
