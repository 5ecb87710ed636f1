package resource

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/zorbgame/zorb/internal/core/handle"
)

var errMissing = errors.New("missing")

func newTestManager(t *testing.T) *Manager[string] {
	return NewManager[string](LoaderFunc[string](func(key string) (string, error) {
		if key == "missing" {
			return "", errMissing
		}
		return "res:" + key, nil
	}), zaptest.NewLogger(t))
}

func TestLoadAssignsMonotonicIDs(t *testing.T) {
	m := newTestManager(t)

	a, err := m.Load("zorb")
	require.NoError(t, err)
	b, err := m.Load("zorb")
	require.NoError(t, err)

	assert.Equal(t, handle.ID[string](0), a, "first id is 0")
	assert.Equal(t, handle.ID[string](1), b)
	assert.NotEqual(t, a, b, "no implicit dedup")
	assert.Equal(t, "res:zorb", m.Get(a))
	assert.Equal(t, 2, m.Len())
}

func TestLoadFailureIsAllOrNothing(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Load("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLoadFailed))
	assert.True(t, errors.Is(err, errMissing))

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "missing", le.Key)
	assert.Equal(t, 0, m.Len())

	id, err := m.Load("ok")
	require.NoError(t, err)
	assert.Equal(t, handle.ID[string](0), id, "failed load must not consume an id")
}

func TestLoadGet(t *testing.T) {
	m := newTestManager(t)
	id, res, err := m.LoadGet("tiles/mask")
	require.NoError(t, err)
	assert.Equal(t, "res:tiles/mask", res)
	assert.True(t, m.Loaded(id))
}

func TestGetUnknownPanics(t *testing.T) {
	m := newTestManager(t)
	assert.False(t, m.Loaded(3))
	assert.Panics(t, func() { m.Get(3) })
}
