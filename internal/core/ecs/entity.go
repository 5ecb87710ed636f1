package ecs

import (
	"fmt"
	"iter"

	"github.com/zorbgame/zorb/internal/core/handle"
)

// Entity tags entity handles.
type Entity struct{}

// EntityID is an index into the entity rows. Entities are never despawned
// individually; the whole world is reset instead, so ids need no generation.
type EntityID = handle.ID[Entity]

// Null is the sentinel entity. Row 0 exists but never belongs to a live
// object, and a zero slot index anywhere means "absent".
const Null EntityID = 0

// Rows holds one R per entity, with a sentinel row at index 0. Its capacity
// is fixed at construction.
type Rows[R any] struct {
	rows []R
}

// NewRows allocates room for capacity live entities plus the sentinel.
func NewRows[R any](capacity int) *Rows[R] {
	rows := make([]R, 1, capacity+1)
	return &Rows[R]{rows: rows}
}

// Spawn appends a row and returns its id. Running out of rows is a sizing
// bug and panics.
func (r *Rows[R]) Spawn(row R) EntityID {
	if len(r.rows) == cap(r.rows) {
		panic(fmt.Sprintf("ecs: entity capacity %d exhausted", cap(r.rows)-1))
	}
	r.rows = append(r.rows, row)
	return EntityID(len(r.rows) - 1)
}

// Row returns the row of a live entity.
func (r *Rows[R]) Row(id EntityID) *R {
	if !r.Alive(id) {
		panic(fmt.Sprintf("ecs: entity %d is not alive", uint32(id)))
	}
	return &r.rows[id]
}

func (r *Rows[R]) Alive(id EntityID) bool {
	return id != Null && int(id) < len(r.rows)
}

// Len is the number of live entities.
func (r *Rows[R]) Len() int { return len(r.rows) - 1 }

func (r *Rows[R]) Cap() int { return cap(r.rows) - 1 }

// All yields every live entity id in spawn order.
func (r *Rows[R]) All() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for i := 1; i < len(r.rows); i++ {
			if !yield(EntityID(i)) {
				return
			}
		}
	}
}

// Reset drops every entity but keeps the sentinel and the backing array.
func (r *Rows[R]) Reset() {
	clear(r.rows[1:])
	r.rows = r.rows[:1]
}

// CopyFrom makes r a copy of src. Both must have the same capacity.
func (r *Rows[R]) CopyFrom(src *Rows[R]) {
	if cap(r.rows) != cap(src.rows) {
		panic("ecs: copy between rows of different capacity")
	}
	r.rows = append(r.rows[:0], src.rows...)
}
