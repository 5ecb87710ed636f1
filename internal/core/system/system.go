package system

// Phase orders systems within a frame. Systems of the same phase run in
// registration order.
type Phase int

const (
	PhaseInput  Phase = iota // 0: movement driven by input and navigation
	PhaseUpdate              // 1: simulation
	PhaseRender              // 2: draw the frame
	PhaseDebug               // 3: overlays on top of the frame
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseUpdate:
		return "update"
	case PhaseRender:
		return "render"
	case PhaseDebug:
		return "debug"
	}
	return "unknown"
}

// System is one transition of the world. It reads prev, the snapshot taken at
// the start of the frame, and writes next. C is the per-frame context.
type System[C, V, W any] interface {
	Name() string
	Phase() Phase
	Update(ctx C, prev V, next W) error
}
