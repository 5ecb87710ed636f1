// Package animation implements keyframe playback. An Animation is immutable
// and can be shared; each player owns a Cursor into it.
package animation

// Keyframe is one timed step of an animation.
type Keyframe[T any] struct {
	Duration uint16 // ms
	Value    T

	endsAt uint64 // cumulative duration up to and including this keyframe
}

func NewKeyframe[T any](durationMs uint16, v T) Keyframe[T] {
	return Keyframe[T]{Duration: durationMs, Value: v}
}

// EndsAt is the offset from the start of the animation at which this
// keyframe stops being active.
func (k Keyframe[T]) EndsAt() uint64 { return k.endsAt }

// Animation is an immutable non-empty sequence of keyframes.
type Animation[T any] struct {
	keyframes []Keyframe[T]
}

// New copies the keyframes and precomputes their cumulative end offsets.
// Panics on an empty sequence.
func New[T any](keyframes []Keyframe[T]) *Animation[T] {
	if len(keyframes) == 0 {
		panic("animation: empty keyframes")
	}
	kfs := make([]Keyframe[T], len(keyframes))
	var acc uint64
	for i, k := range keyframes {
		acc += uint64(k.Duration)
		k.endsAt = acc
		kfs[i] = k
	}
	return &Animation[T]{keyframes: kfs}
}

func (a *Animation[T]) Len() int { return len(a.keyframes) }

func (a *Animation[T]) Keyframe(i int) Keyframe[T] { return a.keyframes[i] }

// Duration is the length of one full cycle in ms.
func (a *Animation[T]) Duration() uint64 { return a.keyframes[len(a.keyframes)-1].endsAt }

// Cursor is the mutable playback position into an Animation.
// The zero value is a stopped cursor that was never started.
type Cursor struct {
	StartedAt uint64
	Frame     int
	Playing   bool
}

// Start rewinds c to the first keyframe at now and returns its value.
func (a *Animation[T]) Start(c *Cursor, now uint64) T {
	c.StartedAt = now
	c.Frame = 0
	c.Playing = true
	return a.keyframes[0].Value
}

// Update advances c past every keyframe that has ended by now. It returns the
// active keyframe's value, or false once the animation has run out, at which
// point the cursor stops. A stopped cursor is left untouched.
func (a *Animation[T]) Update(c *Cursor, now uint64) (T, bool) {
	var zero T
	if !c.Playing {
		return zero, false
	}
	for c.Frame < len(a.keyframes) && c.StartedAt+a.keyframes[c.Frame].endsAt <= now {
		c.Frame++
	}
	if c.Frame >= len(a.keyframes) {
		c.Playing = false
		return zero, false
	}
	return a.keyframes[c.Frame].Value, true
}

// UpdateLoop is Update with infinite looping. A cursor that ran off the end
// restarts at the cycle boundary it crossed, so looping keeps its phase; a
// cursor that never ran starts at now.
func (a *Animation[T]) UpdateLoop(c *Cursor, now uint64) T {
	if v, ok := a.Update(c, now); ok {
		return v
	}
	d := a.Duration()
	if c.Frame < len(a.keyframes) || d == 0 || now < c.StartedAt {
		return a.Start(c, now)
	}
	cycles := (now - c.StartedAt) / d
	a.Start(c, c.StartedAt+cycles*d)
	v, ok := a.Update(c, now)
	if !ok {
		return a.Start(c, now)
	}
	return v
}
