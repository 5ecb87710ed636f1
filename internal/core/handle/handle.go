package handle

import "fmt"

// ID is a 32-bit handle tagged with the kind K of thing it identifies.
// IDs of different kinds are distinct types and cannot be mixed up.
type ID[K any] uint32

func New[K any](v uint32) ID[K] { return ID[K](v) }

// Next returns the handle that follows id.
func (id ID[K]) Next() ID[K] { return id + 1 }

func (id ID[K]) Uint32() uint32 { return uint32(id) }

// Split returns the owning container id (high 16 bits) and the index within
// that container (low 16 bits).
func (id ID[K]) Split() (parent uint16, index uint16) {
	return uint16(id >> 16), uint16(id)
}

// Index is the low 16 bits of a scoped handle.
func (id ID[K]) Index() uint16 { return uint16(id) }

func (id ID[K]) String() string { return fmt.Sprintf("%d", uint32(id)) }

// Scoped builds a handle of kind K owned by a container of kind P.
// The parent must fit in 16 bits.
func Scoped[K, P any](parent ID[P], index uint16) ID[K] {
	if parent > 0xFFFF {
		panic(fmt.Sprintf("handle: parent id %d does not fit in 16 bits", uint32(parent)))
	}
	return ID[K](uint32(parent)<<16 | uint32(index))
}

// Parent recovers the container handle from a scoped handle.
func Parent[P, K any](id ID[K]) ID[P] {
	p, _ := id.Split()
	return ID[P](p)
}
