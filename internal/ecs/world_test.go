package ecs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zorbgame/zorb/internal/geom"
	"github.com/zorbgame/zorb/internal/render"
)

func smallWorld() *World {
	return New(Capacities{Entities: 32, Terrain: 2})
}

func TestNeverAttachedIsAbsent(t *testing.T) {
	w := smallWorld()
	e := w.Spawn(Builder{})

	_, ok := w.PosFor(e)
	assert.False(t, ok)
	_, ok = w.VelFor(e)
	assert.False(t, ok)
	_, ok = w.FollowFor(e)
	assert.False(t, ok)
	_, ok = w.DebugFor(e)
	assert.False(t, ok)
	assert.Nil(t, w.SpriteAnimsFor(e))
	assert.Nil(t, w.TerrainFor(e))
	assert.Nil(t, w.PosForMut(e))

	assert.Equal(t, Entity{}, *w.entities.Row(e), "every slot is the sentinel")
}

func TestSpawnWithBuilder(t *testing.T) {
	w := smallWorld()
	anims := NewSpriteAnims(NewSpriteAnim(0, 1), NewSpriteAnim(0, 2))

	e := w.Spawn(Builder{}.
		WithPos(geom.Pt(400, 400)).
		WithSpriteAnims(&anims).
		WithDebug(DebugFlags{HasBox: true, BoxColor: render.Red}))

	assert.Equal(t, EntityID(1), e)
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, geom.Pt(400, 400), w.PosForUnchecked(e))
	assert.Equal(t, render.Red, w.DebugForUnchecked(e).BoxColor)

	got := w.SpriteAnimsFor(e)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Len())
	anims.Push(NewSpriteAnim(0, 3))
	assert.Equal(t, 2, got.Len(), "builder input is copied")
}

func TestSetUnsetOverwrite(t *testing.T) {
	w := smallWorld()
	a := w.Spawn(Builder{}.WithPos(geom.Pt(1, 1)))
	b := w.Spawn(Builder{}.WithPos(geom.Pt(2, 2)))
	c := w.Spawn(Builder{}.WithPos(geom.Pt(3, 3)))

	w.SetPosFor(b, geom.Pt(20, 20))
	assert.Equal(t, geom.Pt(20, 20), w.PosForUnchecked(b))

	removed := w.UnsetPosFor(a)
	assert.Equal(t, geom.Pt(1, 1), removed)
	_, ok := w.PosFor(a)
	assert.False(t, ok)
	assert.Equal(t, geom.Pt(20, 20), w.PosForUnchecked(b))
	assert.Equal(t, geom.Pt(3, 3), w.PosForUnchecked(c))

	w.OverwritePosFor(a, geom.Pt(5, 5))
	w.OverwritePosFor(c, geom.Pt(6, 6))
	assert.Equal(t, geom.Pt(5, 5), w.PosForUnchecked(a))
	assert.Equal(t, geom.Pt(6, 6), w.PosForUnchecked(c))

	seen := map[EntityID]geom.Point{}
	for e, p := range w.PosIter() {
		seen[e] = p
	}
	assert.Equal(t, map[EntityID]geom.Point{a: geom.Pt(5, 5), b: geom.Pt(20, 20), c: geom.Pt(6, 6)}, seen)

	w.PosForMut(b).X = 0
	assert.Equal(t, 0.0, w.PosForUnchecked(b).X)
}

func TestAbsentAccessPanics(t *testing.T) {
	w := smallWorld()
	e := w.Spawn(Builder{})

	assert.Panics(t, func() { w.PosForUnchecked(e) })
	assert.Panics(t, func() { w.SetFollowFor(e, Follow{}) })
	assert.PanicsWithValue(t, "ecs: unset follow on entity 1 that has none", func() { w.UnsetFollowFor(e) })
	assert.Panics(t, func() { w.TerrainForUnchecked(e) })
	assert.Panics(t, func() { w.PosFor(Null) })
	assert.Panics(t, func() { w.PosFor(7) })
}

func TestCapacityExhaustion(t *testing.T) {
	w := New(Capacities{Entities: 2, Terrain: 1})
	var terrain Terrain
	w.Spawn(Builder{}.WithTerrain(&terrain))
	assert.Panics(t, func() { w.Spawn(Builder{}.WithTerrain(&terrain)) }, "terrain store is full")

	w = New(Capacities{Entities: 2, Terrain: 1})
	w.Spawn(Builder{})
	w.Spawn(Builder{})
	assert.Panics(t, func() { w.Spawn(Builder{}) })

	assert.Panics(t, func() { New(Capacities{}) })
}

func TestFollowModel(t *testing.T) {
	const n = 24
	rng := rand.New(rand.NewSource(42))
	w := smallWorld()
	model := map[EntityID]Follow{}

	var ids []EntityID
	for i := 0; i < n; i++ {
		ids = append(ids, w.Spawn(Builder{}))
	}

	for step := 0; step < 3000; step++ {
		e := ids[rng.Intn(n)]
		f := Follow{Target: ids[rng.Intn(n)], StopAfterArriving: rng.Intn(2) == 0}
		switch rng.Intn(3) {
		case 0:
			if _, has := model[e]; has {
				assert.Equal(t, model[e], w.UnsetFollowFor(e))
				delete(model, e)
			}
		case 1:
			w.OverwriteFollowFor(e, f)
			model[e] = f
		case 2:
			if _, has := model[e]; has {
				w.SetFollowFor(e, f)
				model[e] = f
			}
		}

		for _, id := range ids {
			got, ok := w.FollowFor(id)
			want, has := model[id]
			require.Equal(t, has, ok, "step %d entity %d", step, id)
			require.Equal(t, want, got, "step %d entity %d", step, id)
		}
	}

	yielded := map[EntityID]Follow{}
	for e, f := range w.FollowIter() {
		_, dup := yielded[e]
		require.False(t, dup)
		yielded[e] = f
	}
	assert.Equal(t, model, yielded)
}

func TestResetKeepsCapacity(t *testing.T) {
	w := smallWorld()
	for i := 0; i < 10; i++ {
		w.Spawn(Builder{}.WithPos(geom.Pt(float64(i), 0)))
	}
	w.Reset()

	assert.Equal(t, 0, w.Len())
	assert.Equal(t, 32, w.components.Pos.Cap())
	assert.Equal(t, EntityID(1), w.Spawn(Builder{}))
	_, ok := w.PosFor(1)
	assert.False(t, ok)
}

func TestCopyFromIsDeep(t *testing.T) {
	prev := smallWorld()
	var terrain Terrain
	terrain.Tiles.Set(3, 4, Tile{Solid: true})
	anims := NewSpriteAnims(NewSpriteAnim(0, 0))
	e := prev.Spawn(Builder{}.WithPos(geom.Pt(1, 2)).WithTerrain(&terrain).WithSpriteAnims(&anims))

	next := prev.Clone()
	next.SetPosFor(e, geom.Pt(9, 9))
	next.TerrainForUnchecked(e).Tiles.Set(3, 4, Tile{})
	next.SpriteAnimsForUnchecked(e).Items()[0].Cursor.Frame = 3
	next.Spawn(Builder{})

	assert.Equal(t, geom.Pt(1, 2), prev.PosForUnchecked(e))
	assert.True(t, prev.TerrainForUnchecked(e).Tiles.Get(3, 4).Solid)
	assert.Equal(t, 0, prev.SpriteAnimsForUnchecked(e).Items()[0].Cursor.Frame)
	assert.Equal(t, 1, prev.Len())

	prev.CopyFrom(next)
	assert.Equal(t, 2, prev.Len())
	assert.Equal(t, geom.Pt(9, 9), prev.PosForUnchecked(e))

	assert.Panics(t, func() { prev.CopyFrom(New(DefaultCapacities())) })
}

func TestViewIsReadOnlyWorld(t *testing.T) {
	w := smallWorld()
	e := w.Spawn(Builder{}.WithVel(geom.Vec{X: 1}))
	var v View = w

	assert.True(t, v.Alive(e))
	assert.Equal(t, geom.Vec{X: 1}, v.VelForUnchecked(e))
	n := 0
	for range v.Entities() {
		n++
	}
	assert.Equal(t, 1, n)
}

func TestSpriteAnimsBound(t *testing.T) {
	s := NewSpriteAnims(SpriteAnim{}, SpriteAnim{}, SpriteAnim{}, SpriteAnim{})
	assert.Equal(t, MaxAnimsPerEntity, s.Len())
	assert.Panics(t, func() { s.Push(SpriteAnim{}) })
}
