// Package input holds the decoded keyboard and mouse state handed to the game
// each frame. Draining the backend's event queue happens in the host.
package input

import "github.com/zorbgame/zorb/internal/geom"

type Key int

const (
	KeyEscape Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyZ
	KeyX
	keyCount
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	mouseButtonCount
)

// KeyStatus is the last known state of a key and when it changed (ms).
type KeyStatus struct {
	Down  bool
	Since uint64
}

// ButtonStatus is the last known state of a mouse button.
type ButtonStatus struct {
	Down  bool
	Since uint64
	Pos   geom.ScreenPoint
}

// State is a snapshot of input for one frame.
type State struct {
	Quit     bool
	MousePos geom.ScreenPoint
	keys     [keyCount]KeyStatus
	buttons  [mouseButtonCount]ButtonStatus
}

func (s *State) Key(k Key) KeyStatus { return s.keys[k] }

func (s *State) Button(b MouseButton) ButtonStatus { return s.buttons[b] }

// SetKey records a key transition at now. Repeated presses keep Since.
func (s *State) SetKey(k Key, down bool, now uint64) {
	if s.keys[k].Down == down {
		return
	}
	s.keys[k] = KeyStatus{Down: down, Since: now}
}

// SetButton records a mouse button transition at now and where it happened.
func (s *State) SetButton(b MouseButton, down bool, pos geom.ScreenPoint, now uint64) {
	st := &s.buttons[b]
	st.Pos = pos
	if st.Down == down {
		return
	}
	st.Down = down
	st.Since = now
}

// ReleaseKeys marks every key up. Backends without key-up events call this
// after each frame so a press lasts for one frame.
func (s *State) ReleaseKeys(now uint64) {
	for k := range s.keys {
		s.SetKey(Key(k), false, now)
	}
}
