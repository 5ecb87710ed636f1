package ecs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct{ val uint32 }

// world is the smallest user of Rows and Store: one component kind.
type world struct {
	rows *Rows[row]
	vals *Store[int]
}

func newWorld(n int) *world {
	return &world{rows: NewRows[row](n), vals: NewStore[int]("val", n)}
}

func (w *world) attach(e EntityID, v int) {
	w.rows.Row(e).val = w.vals.Push(e, v)
}

func (w *world) detach(e EntityID) int {
	r := w.rows.Row(e)
	i := r.val
	r.val = 0
	v, moved := w.vals.SwapRemove(i)
	if moved != Null {
		w.rows.Row(moved).val = i
	}
	return v
}

func (w *world) get(e EntityID) (int, bool) {
	i := w.rows.Row(e).val
	if i == 0 {
		return 0, false
	}
	return *w.vals.At(i), true
}

func TestSentinel(t *testing.T) {
	w := newWorld(4)
	e := w.rows.Spawn(row{})

	assert.Equal(t, EntityID(1), e, "first entity is 1, row 0 is the sentinel")
	assert.False(t, w.rows.Alive(Null))
	_, ok := w.get(e)
	assert.False(t, ok)
	assert.Equal(t, uint32(0), w.rows.Row(e).val)

	assert.Panics(t, func() { w.vals.At(0) })
	assert.Panics(t, func() { w.rows.Row(Null) })
	assert.Panics(t, func() { w.rows.Row(5) })
}

func TestSwapRemoveRelinks(t *testing.T) {
	w := newWorld(8)
	a := w.rows.Spawn(row{})
	b := w.rows.Spawn(row{})
	c := w.rows.Spawn(row{})
	w.attach(a, 10)
	w.attach(b, 20)
	w.attach(c, 30)

	assert.Equal(t, 10, w.detach(a))

	// c moved into a's old slot
	assert.Equal(t, uint32(1), w.rows.Row(c).val)
	v, ok := w.get(c)
	require.True(t, ok)
	assert.Equal(t, 30, v)
	v, ok = w.get(b)
	require.True(t, ok)
	assert.Equal(t, 20, v)
	_, ok = w.get(a)
	assert.False(t, ok)

	// removing the last slot moves nothing
	_, moved := w.vals.SwapRemove(2)
	assert.Equal(t, Null, moved)
	assert.Equal(t, 1, w.vals.Len())
}

func TestSwapRemoveModel(t *testing.T) {
	const n = 64
	rng := rand.New(rand.NewSource(7))
	w := newWorld(n)
	model := make(map[EntityID]int)

	ids := make([]EntityID, n)
	for i := range ids {
		ids[i] = w.rows.Spawn(row{})
	}

	for step := 0; step < 5000; step++ {
		e := ids[rng.Intn(n)]
		if _, has := model[e]; has {
			if rng.Intn(2) == 0 {
				got := w.detach(e)
				require.Equal(t, model[e], got, "step %d", step)
				delete(model, e)
			} else {
				*w.vals.At(w.rows.Row(e).val) = step
				model[e] = step
			}
		} else {
			w.attach(e, step)
			model[e] = step
		}

		require.Equal(t, len(model), w.vals.Len(), "step %d", step)
		for _, id := range ids {
			v, ok := w.get(id)
			mv, has := model[id]
			require.Equal(t, has, ok, "step %d entity %d", step, id)
			if has {
				require.Equal(t, mv, v, "step %d entity %d", step, id)
			}
		}
	}

	seen := make(map[EntityID]int)
	for e, v := range w.vals.All() {
		_, dup := seen[e]
		require.False(t, dup, "entity %d yielded twice", e)
		seen[e] = *v
	}
	assert.Equal(t, model, seen)
}

func TestCapacity(t *testing.T) {
	w := newWorld(2)
	a := w.rows.Spawn(row{})
	w.rows.Spawn(row{})
	assert.Panics(t, func() { w.rows.Spawn(row{}) })

	w.vals.Push(a, 1)
	w.vals.Push(a, 2)
	assert.PanicsWithValue(t, "ecs: val capacity 2 exhausted", func() { w.vals.Push(a, 3) })
}

func TestResetKeepsBacking(t *testing.T) {
	w := newWorld(4)
	e := w.rows.Spawn(row{})
	w.attach(e, 1)

	w.rows.Reset()
	w.vals.Reset()

	assert.Equal(t, 0, w.rows.Len())
	assert.Equal(t, 0, w.vals.Len())
	assert.Equal(t, 4, w.rows.Cap())
	assert.Equal(t, 4, w.vals.Cap())
	assert.False(t, w.rows.Alive(e))
	assert.Equal(t, e, w.rows.Spawn(row{}), "ids restart after reset")
}

func TestCopyFromIsIndependent(t *testing.T) {
	src := newWorld(4)
	dst := newWorld(4)
	e := src.rows.Spawn(row{})
	src.attach(e, 5)

	dst.rows.CopyFrom(src.rows)
	dst.vals.CopyFrom(src.vals)
	*dst.vals.At(dst.rows.Row(e).val) = 9

	v, _ := src.get(e)
	assert.Equal(t, 5, v)
	v, _ = dst.get(e)
	assert.Equal(t, 9, v)

	assert.Panics(t, func() { dst.vals.CopyFrom(NewStore[int]("val", 8)) })
}

func TestIterationStopsEarly(t *testing.T) {
	w := newWorld(4)
	for i := 0; i < 3; i++ {
		w.attach(w.rows.Spawn(row{}), i)
	}
	n := 0
	for range w.vals.Values() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)

	var all []EntityID
	for e := range w.rows.All() {
		all = append(all, e)
	}
	assert.Equal(t, []EntityID{1, 2, 3}, all)
}
