package render

import (
	"github.com/pkg/errors"

	"github.com/zorbgame/zorb/internal/geom"
)

type OpKind int

const (
	OpCopy OpKind = iota
	OpDrawRect
	OpFillRect
	OpClear
)

// Op is one recorded draw call.
type Op struct {
	Kind  OpKind
	Tex   Texture
	Src   geom.PixelRect
	Dst   geom.ScreenRect
	Color Color
}

// Recorder is a Canvas that keeps every call. Setting FailAfter makes the
// n-th draw call (1-based) and every later one fail.
type Recorder struct {
	Ops       []Op
	FailAfter int
	color     Color
	calls     int
}

var ErrCanvas = errors.New("render: canvas failure")

func (r *Recorder) fail() error {
	r.calls++
	if r.FailAfter > 0 && r.calls >= r.FailAfter {
		return ErrCanvas
	}
	return nil
}

func (r *Recorder) Copy(tex Texture, src geom.PixelRect, dst geom.ScreenRect) error {
	if err := r.fail(); err != nil {
		return err
	}
	r.Ops = append(r.Ops, Op{Kind: OpCopy, Tex: tex, Src: src, Dst: dst, Color: r.color})
	return nil
}

func (r *Recorder) SetDrawColor(c Color) { r.color = c }

func (r *Recorder) DrawRect(dst geom.ScreenRect) error {
	if err := r.fail(); err != nil {
		return err
	}
	r.Ops = append(r.Ops, Op{Kind: OpDrawRect, Dst: dst, Color: r.color})
	return nil
}

func (r *Recorder) FillRect(dst geom.ScreenRect) error {
	if err := r.fail(); err != nil {
		return err
	}
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Dst: dst, Color: r.color})
	return nil
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: r.color})
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops the recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.calls = 0
}

// StubTexture is a sized texture with no pixels.
type StubTexture struct {
	Name string
	W, H int
}

func (t *StubTexture) Size() (int, int) { return t.W, t.H }

// StubLoader hands out StubTextures and records requested paths.
type StubLoader struct {
	Paths []string
	Err   error
}

func (l *StubLoader) LoadTexture(path string) (Texture, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	l.Paths = append(l.Paths, path)
	return &StubTexture{Name: path, W: 256, H: 256}, nil
}
