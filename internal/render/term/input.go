package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/zorbgame/zorb/internal/input"
)

var runeKeys = map[rune]input.Key{
	'w': input.KeyW, 'a': input.KeyA, 's': input.KeyS, 'd': input.KeyD,
	'z': input.KeyZ, 'x': input.KeyX,
}

var mouseButtons = []struct {
	mask tcell.ButtonMask
	btn  input.MouseButton
}{
	{tcell.Button1, input.MouseLeft},
	{tcell.Button3, input.MouseMiddle},
	{tcell.Button2, input.MouseRight},
}

// Apply folds one tcell event into st. Terminals report key presses only, so
// the host releases keys after every frame.
func (c *Canvas) Apply(st *input.State, ev tcell.Event, now uint64) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			st.SetKey(input.KeyEscape, true, now)
		case tcell.KeyCtrlC:
			st.Quit = true
		case tcell.KeyRune:
			r := ev.Rune()
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			if k, ok := runeKeys[r]; ok {
				st.SetKey(k, true, now)
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		pos := c.CellCenter(col, row)
		st.MousePos = pos
		for _, b := range mouseButtons {
			st.SetButton(b.btn, ev.Buttons()&b.mask != 0, pos, now)
		}
	}
}
