package glint

// Snapshot is the immutable per-tick input record. The host delivers one
// snapshot per tick; the engine retains the previous snapshot so that
// every "just pressed" decision is an edge between two consecutive
// snapshots, never accumulated state.
type Snapshot struct {
	// Held directional axes, thresholded at ±0.5 for edge detection.
	AxisX, AxisY float32

	// Modifier-chorded directional axes, used for pane switching.
	PaneX, PaneY float32

	Accept    bool
	Cancel    bool
	Tab       bool
	ShiftTab  bool
	Home      bool
	End       bool
	PageUp    bool
	PageDown  bool
	Backspace bool
	Delete    bool
	Move      bool // drag move-mode toggle

	// Optional raw keystroke for text entry.
	Rune    rune
	HasRune bool

	// Active marks the snapshot as carrying input this tick.
	Active bool
}

// axisThreshold is the magnitude a held axis must cross to register.
const axisThreshold = 0.5

func axisNeg(v float32) bool { return v < -axisThreshold }
func axisPos(v float32) bool { return v > axisThreshold }

// edge reports a not-active to active transition between two snapshots.
func edge(cur, prev bool) bool { return cur && !prev }

// AxisEdges reports threshold crossings on the plain directional pair for
// the given axis, each direction detected independently.
func (s Snapshot) AxisEdges(a Axis, prev Snapshot) (neg, pos bool) {
	cur, was := s.AxisY, prev.AxisY
	if a == Horizontal {
		cur, was = s.AxisX, prev.AxisX
	}
	neg = axisNeg(cur) && !axisNeg(was)
	pos = axisPos(cur) && !axisPos(was)
	return neg, pos
}

// PaneEdges reports threshold crossings on the modifier-chorded pair for
// the given axis. Holding the chord does not re-trigger.
func (s Snapshot) PaneEdges(a Axis, prev Snapshot) (neg, pos bool) {
	cur, was := s.PaneY, prev.PaneY
	if a == Horizontal {
		cur, was = s.PaneX, prev.PaneX
	}
	neg = axisNeg(cur) && !axisNeg(was)
	pos = axisPos(cur) && !axisPos(was)
	return neg, pos
}

// AcceptEdge reports a fresh accept press.
func (s Snapshot) AcceptEdge(prev Snapshot) bool { return edge(s.Accept, prev.Accept) }

// CancelEdge reports a fresh cancel/escape press.
func (s Snapshot) CancelEdge(prev Snapshot) bool { return edge(s.Cancel, prev.Cancel) }

// TabEdge reports a fresh next-focus press.
func (s Snapshot) TabEdge(prev Snapshot) bool { return edge(s.Tab, prev.Tab) }

// ShiftTabEdge reports a fresh previous-focus press.
func (s Snapshot) ShiftTabEdge(prev Snapshot) bool { return edge(s.ShiftTab, prev.ShiftTab) }

// HomeEdge reports a fresh home press.
func (s Snapshot) HomeEdge(prev Snapshot) bool { return edge(s.Home, prev.Home) }

// EndEdge reports a fresh end press.
func (s Snapshot) EndEdge(prev Snapshot) bool { return edge(s.End, prev.End) }

// PageUpEdge reports a fresh page-up press.
func (s Snapshot) PageUpEdge(prev Snapshot) bool { return edge(s.PageUp, prev.PageUp) }

// PageDownEdge reports a fresh page-down press.
func (s Snapshot) PageDownEdge(prev Snapshot) bool { return edge(s.PageDown, prev.PageDown) }

// MoveEdge reports a fresh move-mode toggle press.
func (s Snapshot) MoveEdge(prev Snapshot) bool { return edge(s.Move, prev.Move) }
