package ecs

import (
	"fmt"
	"iter"
)

type slot[T any] struct {
	owner EntityID
	value T
}

// Store is a dense array of T values, each tagged with its owning entity.
// Index 0 is a sentinel so a zero slot in an entity row means absent. Values
// are copied by assignment, so T must not hold pointers that need deep
// copying for CopyFrom to produce an independent store.
type Store[T any] struct {
	name  string
	items []slot[T]
}

// NewStore allocates room for capacity values plus the sentinel.
func NewStore[T any](name string, capacity int) *Store[T] {
	return &Store[T]{
		name:  name,
		items: make([]slot[T], 1, capacity+1),
	}
}

// Push appends v owned by e and returns its slot. A full store is a sizing
// bug and panics.
func (s *Store[T]) Push(e EntityID, v T) uint32 {
	if len(s.items) == cap(s.items) {
		panic(fmt.Sprintf("ecs: %s capacity %d exhausted", s.name, cap(s.items)-1))
	}
	s.items = append(s.items, slot[T]{owner: e, value: v})
	return uint32(len(s.items) - 1)
}

// At returns the value in slot i. Slot 0 is never a component.
func (s *Store[T]) At(i uint32) *T {
	s.check(i)
	return &s.items[i].value
}

// Owner returns the entity that owns slot i.
func (s *Store[T]) Owner(i uint32) EntityID {
	s.check(i)
	return s.items[i].owner
}

func (s *Store[T]) check(i uint32) {
	if i == 0 {
		panic(fmt.Sprintf("ecs: %s accessed through an absent slot", s.name))
	}
	if int(i) >= len(s.items) {
		panic(fmt.Sprintf("ecs: %s slot %d out of range (len %d)", s.name, i, len(s.items)-1))
	}
}

// SwapRemove removes slot i by moving the last value into it. It returns the
// removed value and the entity whose value moved into slot i, or Null when
// i was the last slot. The caller must repoint that entity's row at i.
func (s *Store[T]) SwapRemove(i uint32) (T, EntityID) {
	s.check(i)
	removed := s.items[i].value
	last := uint32(len(s.items) - 1)

	moved := Null
	if i != last {
		s.items[i] = s.items[last]
		moved = s.items[i].owner
	}
	var zero slot[T]
	s.items[last] = zero
	s.items = s.items[:last]
	return removed, moved
}

// Len is the number of live values.
func (s *Store[T]) Len() int { return len(s.items) - 1 }

func (s *Store[T]) Cap() int { return cap(s.items) - 1 }

func (s *Store[T]) Name() string { return s.name }

// All yields (owner, value) for every live slot. Mutating the store while
// iterating is not supported.
func (s *Store[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for i := 1; i < len(s.items); i++ {
			if !yield(s.items[i].owner, &s.items[i].value) {
				return
			}
		}
	}
}

// Values is All by value.
func (s *Store[T]) Values() iter.Seq2[EntityID, T] {
	return func(yield func(EntityID, T) bool) {
		for i := 1; i < len(s.items); i++ {
			if !yield(s.items[i].owner, s.items[i].value) {
				return
			}
		}
	}
}

// Reset drops every value but keeps the sentinel and the backing array.
func (s *Store[T]) Reset() {
	clear(s.items[1:])
	s.items = s.items[:1]
}

// CopyFrom makes s a copy of src without reallocating. Both must have the
// same capacity.
func (s *Store[T]) CopyFrom(src *Store[T]) {
	if cap(s.items) != cap(src.items) {
		panic(fmt.Sprintf("ecs: copy of %s between stores of different capacity", s.name))
	}
	s.items = append(s.items[:0], src.items...)
}
