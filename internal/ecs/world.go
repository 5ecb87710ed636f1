// Package ecs is the game world: component types and the World that stores
// them. Accessors are generated from components.yaml.
package ecs

import (
	"fmt"
	"iter"

	core "github.com/zorbgame/zorb/internal/core/ecs"
)

//go:generate go run ../../cmd/xtask gen-ecs -i components.yaml -o components_gen.go

type EntityID = core.EntityID

// Null is the entity that never exists.
const Null = core.Null

// Capacities bound the world. They are fixed once a World is built.
type Capacities struct {
	// Entities bounds live entities and every component store without its
	// own bound.
	Entities int
	Terrain  int
}

func DefaultCapacities() Capacities {
	return Capacities{Entities: 8192, Terrain: 4}
}

// World holds entity rows and one dense store per component type. The zero
// row and the zero slot of every store are sentinels.
type World struct {
	caps       Capacities
	entities   *core.Rows[Entity]
	components Components
}

// New allocates a World. Nothing is allocated after this.
func New(c Capacities) *World {
	if c.Entities <= 0 || c.Terrain <= 0 {
		panic(fmt.Sprintf("ecs: invalid capacities %+v", c))
	}
	return &World{
		caps:       c,
		entities:   core.NewRows[Entity](c.Entities),
		components: newComponents(c),
	}
}

func (w *World) Capacities() Capacities { return w.caps }

// Len is the number of live entities.
func (w *World) Len() int { return w.entities.Len() }

func (w *World) Alive(e EntityID) bool { return w.entities.Alive(e) }

// Entities yields live entities in spawn order.
func (w *World) Entities() iter.Seq[EntityID] { return w.entities.All() }

// Reset empties the world, keeping every backing array.
func (w *World) Reset() {
	w.entities.Reset()
	w.components.reset()
}

// CopyFrom overwrites w with a deep copy of src. Both must share capacities.
func (w *World) CopyFrom(src *World) {
	if w.caps != src.caps {
		panic(fmt.Sprintf("ecs: copy between worlds of different capacities %+v and %+v", w.caps, src.caps))
	}
	w.entities.CopyFrom(src.entities)
	w.components.copyFrom(&src.components)
}

// Clone returns an independent copy of w.
func (w *World) Clone() *World {
	c := New(w.caps)
	c.CopyFrom(w)
	return c
}
