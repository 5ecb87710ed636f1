// Package resource caches loaded assets behind type-tagged handles. All loads
// happen during init; lookups during the frame loop never load anything.
package resource

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/zorbgame/zorb/internal/core/handle"
)

// ErrLoadFailed is matched by every error returned from Manager.Load.
var ErrLoadFailed = errors.New("resource could not be loaded")

// LoadError reports which key failed and why.
type LoadError struct {
	Key string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q: %v", e.Key, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoadFailed }

// Loader produces a Res from a key.
type Loader[Res any] interface {
	Load(key string) (Res, error)
}

// LoaderFunc adapts a function to a Loader.
type LoaderFunc[Res any] func(key string) (Res, error)

func (f LoaderFunc[Res]) Load(key string) (Res, error) { return f(key) }

// Manager caches resources produced by a Loader under monotonically
// increasing ids, starting at 0. Loading the same key twice yields two ids.
type Manager[Res any] struct {
	loader Loader[Res]
	nextID handle.ID[Res]
	cache  map[handle.ID[Res]]Res
	log    *zap.Logger
}

func NewManager[Res any](loader Loader[Res], log *zap.Logger) *Manager[Res] {
	return &Manager[Res]{
		loader: loader,
		cache:  make(map[handle.ID[Res]]Res, 16),
		log:    log,
	}
}

// Load runs the loader and installs the result under a fresh id. On failure
// nothing changes.
func (m *Manager[Res]) Load(key string) (handle.ID[Res], error) {
	id, _, err := m.LoadGet(key)
	return id, err
}

// LoadGet is Load that also returns the loaded resource.
func (m *Manager[Res]) LoadGet(key string) (handle.ID[Res], Res, error) {
	res, err := m.loader.Load(key)
	if err != nil {
		var zero Res
		return 0, zero, &LoadError{Key: key, Err: err}
	}

	id := m.nextID
	if _, dup := m.cache[id]; dup {
		panic(fmt.Sprintf("resource: double load of id %d", uint32(id)))
	}
	m.nextID = id.Next()
	m.cache[id] = res

	m.log.Debug("resource loaded", zap.String("key", key), zap.Uint32("id", uint32(id)))
	return id, res, nil
}

// Get returns a loaded resource. An id that was never loaded is a bug.
func (m *Manager[Res]) Get(id handle.ID[Res]) Res {
	res, ok := m.cache[id]
	if !ok {
		panic(fmt.Sprintf("resource: id %d was not loaded", uint32(id)))
	}
	return res
}

// Loaded reports whether id is in the cache.
func (m *Manager[Res]) Loaded(id handle.ID[Res]) bool {
	_, ok := m.cache[id]
	return ok
}

func (m *Manager[Res]) Len() int { return len(m.cache) }
