package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/zorbgame/zorb/internal/camera"
	"github.com/zorbgame/zorb/internal/core/event"
	"github.com/zorbgame/zorb/internal/ecs"
	"github.com/zorbgame/zorb/internal/frame"
	"github.com/zorbgame/zorb/internal/geom"
	"github.com/zorbgame/zorb/internal/input"
	"github.com/zorbgame/zorb/internal/render"
	"github.com/zorbgame/zorb/internal/sprite"
)

const zorbDoc = `texture: zorb.png
cels:
  - {tex_rect: {x: 0, y: 0, w: 16, h: 16}, src_rect: {x: 4, y: 2, w: 16, h: 16}}
  - {tex_rect: {x: 16, y: 0, w: 16, h: 16}, src_rect: {x: 0, y: 0, w: 16, h: 16}}
  - {tex_rect: {x: 32, y: 0, w: 8, h: 8}, src_rect: {x: 4, y: 4, w: 8, h: 8}}
animations:
  "body:idle":
    layers: [body]
    keyframes:
      - {duration_ms: 100, cels: [0]}
      - {duration_ms: 100, cels: [1]}
  "face:cute":
    layers: [face]
    keyframes:
      - {duration_ms: 1000, cels: [2]}
`

const tilesDoc = `texture: mask.png
cels:
  - {tex_rect: {x: 0, y: 0, w: 192, h: 64}, src_rect: {x: 0, y: 0, w: 192, h: 64}}
tilesets:
  mask: {grid_size: 16, cel: 0}
`

type fixture struct {
	ctx    *frame.Ctx
	canvas *render.Recorder
	prev   *ecs.World
	next   *ecs.World
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zorb.res.yaml"), []byte(zorbDoc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mask.res.yaml"), []byte(tilesDoc), 0o644))

	log := zaptest.NewLogger(t)
	lib := sprite.NewLibrary(dir, &render.StubLoader{}, log)
	zorbID, zorb, err := lib.LoadGet("zorb")
	require.NoError(t, err)
	tilesID, tiles, err := lib.LoadGet("mask")
	require.NoError(t, err)

	canvas := &render.Recorder{}
	cam := camera.New(0.5, 3, geom.Pt(0, 0))
	prev := ecs.New(ecs.Capacities{Entities: 16, Terrain: 1})

	return &fixture{
		ctx: &frame.Ctx{
			NowMs:   1000,
			DeltaMs: 20,
			DeltaS:  0.02,
			Input:   &input.State{},
			Canvas:  canvas,
			Camera:  cam,
			Sprites: lib,
			Assets: &frame.Assets{
				Zorb: &frame.ZorbAssets{
					Sheet:    zorbID,
					BodyIdle: zorb.AnimationID(zorbID, "body:idle"),
					FaceCute: zorb.AnimationID(zorbID, "face:cute"),
				},
				Terrain: &frame.TerrainAssets{Sheet: tilesID, Tileset: tiles.TilesetID(tilesID, "mask")},
			},
			Bus:    event.NewBus(),
			Log:    log,
			Tuning: frame.DefaultTuning(),
		},
		canvas: canvas,
		prev:   prev,
		next:   prev.Clone(),
	}
}

// sync starts a frame: next becomes a copy of prev.
func (f *fixture) sync() { f.next.CopyFrom(f.prev) }

// commit ends a frame: prev becomes a copy of next.
func (f *fixture) commit() { f.prev.CopyFrom(f.next) }

func (f *fixture) spawn(b ecs.Builder) ecs.EntityID {
	id := f.prev.Spawn(b)
	f.sync()
	return id
}
