package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zorbgame/zorb/internal/geom"
)

func TestKeyTransitions(t *testing.T) {
	var s State
	s.SetKey(KeyW, true, 10)
	s.SetKey(KeyW, true, 20)
	assert.Equal(t, KeyStatus{Down: true, Since: 10}, s.Key(KeyW))

	s.ReleaseKeys(30)
	assert.Equal(t, KeyStatus{Down: false, Since: 30}, s.Key(KeyW))
	assert.Equal(t, KeyStatus{}, s.Key(KeyA), "untouched keys keep their zero state")
}

func TestButtonTracksPosition(t *testing.T) {
	var s State
	s.SetButton(MouseLeft, true, geom.ScreenPoint{X: 1, Y: 2}, 5)
	s.SetButton(MouseLeft, true, geom.ScreenPoint{X: 3, Y: 4}, 6)

	b := s.Button(MouseLeft)
	assert.True(t, b.Down)
	assert.Equal(t, uint64(5), b.Since)
	assert.Equal(t, geom.ScreenPoint{X: 3, Y: 4}, b.Pos)
}
