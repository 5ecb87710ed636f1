package system

import (
	"fmt"
	"sort"
)

// Error reports the system that failed a frame.
type Error struct {
	System string
	Phase  Phase
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("system %s (%s): %v", e.System, e.Phase, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Runner executes systems in phase order each frame.
type Runner[C, V, W any] struct {
	systems []System[C, V, W]
	sorted  bool
}

func NewRunner[C, V, W any]() *Runner[C, V, W] {
	return &Runner[C, V, W]{
		systems: make([]System[C, V, W], 0, 8),
	}
}

func (r *Runner[C, V, W]) Register(s System[C, V, W]) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Tick runs every system once. The first failure stops the frame and is
// returned as an *Error; later systems do not run.
func (r *Runner[C, V, W]) Tick(ctx C, prev V, next W) error {
	r.ensureSorted()
	for _, s := range r.systems {
		if err := s.Update(ctx, prev, next); err != nil {
			return &Error{System: s.Name(), Phase: s.Phase(), Err: err}
		}
	}
	return nil
}

// TickPhase runs only the systems of one phase.
func (r *Runner[C, V, W]) TickPhase(phase Phase, ctx C, prev V, next W) error {
	r.ensureSorted()
	for _, s := range r.systems {
		if s.Phase() != phase {
			continue
		}
		if err := s.Update(ctx, prev, next); err != nil {
			return &Error{System: s.Name(), Phase: s.Phase(), Err: err}
		}
	}
	return nil
}

// Names lists systems in execution order.
func (r *Runner[C, V, W]) Names() []string {
	r.ensureSorted()
	names := make([]string, len(r.systems))
	for i, s := range r.systems {
		names[i] = s.Name()
	}
	return names
}

func (r *Runner[C, V, W]) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
