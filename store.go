package glint

// Axis selects which directional pair a scope (or split) reacts to.
type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

// NavScope is the per-container navigation state: a cyclable selection
// among the container's selectable children. The selection index persists
// across ticks and is re-clamped against the live child count every tick.
type NavScope struct {
	Axis       Axis
	Wrap       bool
	Index      int
	ChildCount int
}

// Selectable marks a node as a selection candidate within its parent scope.
// Selected is rewritten by the engine every tick; at most one child of a
// scope is selected at any tick.
type Selectable struct {
	Selected bool
}

// Interact is the visual/semantic state of a focusable or selectable node.
// The engine manages Focused and Selected; Disabled is author-set and only
// ever read here.
type Interact struct {
	Focused  bool
	Selected bool
	Disabled bool
}

// Focusable marks a node as part of the global focus ring.
// TabOrder orders the ring (lower first); ties fall back to tree order.
type Focusable struct {
	TabOrder int
}

// Collapse marks a togglable container. Accepting the selection on a
// collapsible node flips Collapsed instead of invoking a callback.
type Collapse struct {
	Collapsed bool
}

// Overlay is a popup, modal or floating window participating in dismiss
// routing and z-order stacking.
type Overlay struct {
	Visible bool
	Z       int
	Modal   bool

	// PushedScope records that showing this overlay pushed a navigation
	// scope; dismissing it pops that scope.
	PushedScope bool

	// OnDismiss fires at most once per cancel edge, on the topmost
	// dismiss-routed overlay.
	OnDismiss func()
}

// Scrollable is a viewport over Total items showing Visible of them
// starting at Offset. The engine clamps Offset into
// [0, max(0, Total-Visible)] every tick no matter who last wrote it.
type Scrollable struct {
	Offset  int
	Total   int
	Visible int
}

// Draggable is the per-tick position record of a movable overlay.
// Moving is visual feedback only: it is re-projected from the engine's
// persistent drag state every tick, because this record may be recreated
// by composition between ticks.
type Draggable struct {
	X, Y int
	W, H int

	Moving bool
}

// TextField is the author-side configuration of a text entry.
type TextField struct {
	// MaxLen bounds the buffer in bytes (0 means the default ceiling).
	MaxLen int
	// Width is the visible window in display columns (0 means default).
	Width     int
	Multiline bool

	// OnChange fires after any buffer mutation, never on pure cursor moves.
	OnChange func(text string)
	// OnSubmit fires on an accept edge in single-line mode.
	OnSubmit func(text string)
}

// RangeF is a float value clamped into [Min, Max] every tick.
type RangeF struct {
	Value, Min, Max float32
}

// RangeI is an int value clamped into [Min, Max] every tick.
type RangeI struct {
	Value, Min, Max int
}

// Toast is a transient notification dismissed after Duration seconds of
// accumulated tick time.
type Toast struct {
	Duration  float32
	Elapsed   float32
	Dismissed bool
}

// Split marks a two-pane split container. Axis is the split orientation:
// a Horizontal split lays panes side by side and reacts to the horizontal
// pane-switch chord, a Vertical split stacks them and reacts to the
// vertical one. The panes are the split's first two children.
type Split struct {
	Axis Axis
}

// Store holds the behavioral component records for tree nodes. The engine
// reads and writes these; rendering-only data lives elsewhere and is never
// touched here.
type Store struct {
	scopes     map[NodeID]*NavScope
	selectable map[NodeID]*Selectable
	interact   map[NodeID]*Interact
	focusable  map[NodeID]*Focusable
	collapse   map[NodeID]*Collapse
	activate   map[NodeID]func()
	overlays   map[NodeID]*Overlay
	scrollable map[NodeID]*Scrollable
	draggable  map[NodeID]*Draggable
	fields     map[NodeID]*TextField
	buffers    map[NodeID]*TextBuffer
	splits     map[NodeID]*Split
	rangesF    map[NodeID]*RangeF
	rangesI    map[NodeID]*RangeI
	toasts     map[NodeID]*Toast
}

// NewStore creates an empty component store.
func NewStore() *Store {
	return &Store{
		scopes:     make(map[NodeID]*NavScope),
		selectable: make(map[NodeID]*Selectable),
		interact:   make(map[NodeID]*Interact),
		focusable:  make(map[NodeID]*Focusable),
		collapse:   make(map[NodeID]*Collapse),
		activate:   make(map[NodeID]func()),
		overlays:   make(map[NodeID]*Overlay),
		scrollable: make(map[NodeID]*Scrollable),
		draggable:  make(map[NodeID]*Draggable),
		fields:     make(map[NodeID]*TextField),
		buffers:    make(map[NodeID]*TextBuffer),
		splits:     make(map[NodeID]*Split),
		rangesF:    make(map[NodeID]*RangeF),
		rangesI:    make(map[NodeID]*RangeI),
		toasts:     make(map[NodeID]*Toast),
	}
}

// SetScope attaches a navigation scope to id and returns it.
func (s *Store) SetScope(id NodeID, sc NavScope) *NavScope {
	p := &sc
	s.scopes[id] = p
	return p
}

// Scope returns id's navigation scope, or nil.
func (s *Store) Scope(id NodeID) *NavScope { return s.scopes[id] }

// SetSelectable marks id as a selection candidate.
func (s *Store) SetSelectable(id NodeID) *Selectable {
	p := &Selectable{}
	s.selectable[id] = p
	return p
}

// Selectable returns id's selectable record, or nil.
func (s *Store) Selectable(id NodeID) *Selectable { return s.selectable[id] }

// Interact returns id's interact state, creating it on first use.
func (s *Store) Interact(id NodeID) *Interact {
	p := s.interact[id]
	if p == nil {
		p = &Interact{}
		s.interact[id] = p
	}
	return p
}

// SetFocusable adds id to the global focus ring with the given tab order.
func (s *Store) SetFocusable(id NodeID, tabOrder int) *Focusable {
	p := &Focusable{TabOrder: tabOrder}
	s.focusable[id] = p
	return p
}

// Focusable returns id's focus-ring record, or nil.
func (s *Store) Focusable(id NodeID) *Focusable { return s.focusable[id] }

// SetCollapse marks id as a togglable container.
func (s *Store) SetCollapse(id NodeID, collapsed bool) *Collapse {
	p := &Collapse{Collapsed: collapsed}
	s.collapse[id] = p
	return p
}

// Collapse returns id's collapse record, or nil.
func (s *Store) Collapse(id NodeID) *Collapse { return s.collapse[id] }

// OnActivate registers id's activation callback, fired when the node is
// accepted while selected. A node is either an activatable leaf or a
// togglable container, never both.
func (s *Store) OnActivate(id NodeID, fn func()) {
	s.activate[id] = fn
}

// Activation returns id's activation callback, or nil.
func (s *Store) Activation(id NodeID) func() { return s.activate[id] }

// SetOverlay attaches an overlay record to id and returns it.
func (s *Store) SetOverlay(id NodeID, ov Overlay) *Overlay {
	p := &ov
	s.overlays[id] = p
	return p
}

// Overlay returns id's overlay record, or nil.
func (s *Store) Overlay(id NodeID) *Overlay { return s.overlays[id] }

// SetScrollable attaches a scroll viewport to id and returns it.
func (s *Store) SetScrollable(id NodeID, sc Scrollable) *Scrollable {
	p := &sc
	s.scrollable[id] = p
	return p
}

// Scrollable returns id's scroll record, or nil.
func (s *Store) Scrollable(id NodeID) *Scrollable { return s.scrollable[id] }

// SetDraggable attaches a drag position record to id and returns it.
func (s *Store) SetDraggable(id NodeID, d Draggable) *Draggable {
	p := &d
	s.draggable[id] = p
	return p
}

// Draggable returns id's drag record, or nil.
func (s *Store) Draggable(id NodeID) *Draggable { return s.draggable[id] }

// SetTextField attaches a text entry config to id and returns it.
// The backing buffer is created lazily on first processing tick.
func (s *Store) SetTextField(id NodeID, f TextField) *TextField {
	p := &f
	s.fields[id] = p
	return p
}

// TextField returns id's text entry config, or nil.
func (s *Store) TextField(id NodeID) *TextField { return s.fields[id] }

// Buffer returns id's text buffer, creating it on first use.
func (s *Store) Buffer(id NodeID) *TextBuffer {
	p := s.buffers[id]
	if p == nil {
		p = &TextBuffer{}
		s.buffers[id] = p
	}
	return p
}

// SetSplit marks id as a two-pane split container.
func (s *Store) SetSplit(id NodeID, axis Axis) *Split {
	p := &Split{Axis: axis}
	s.splits[id] = p
	return p
}

// Split returns id's split record, or nil.
func (s *Store) Split(id NodeID) *Split { return s.splits[id] }

// SetRangeF attaches a clamped float range to id and returns it.
func (s *Store) SetRangeF(id NodeID, r RangeF) *RangeF {
	p := &r
	s.rangesF[id] = p
	return p
}

// RangeF returns id's float range, or nil.
func (s *Store) RangeF(id NodeID) *RangeF { return s.rangesF[id] }

// SetRangeI attaches a clamped int range to id and returns it.
func (s *Store) SetRangeI(id NodeID, r RangeI) *RangeI {
	p := &r
	s.rangesI[id] = p
	return p
}

// RangeI returns id's int range, or nil.
func (s *Store) RangeI(id NodeID) *RangeI { return s.rangesI[id] }

// SetToast attaches an auto-dismiss timer to id and returns it.
func (s *Store) SetToast(id NodeID, duration float32) *Toast {
	p := &Toast{Duration: duration}
	s.toasts[id] = p
	return p
}

// Toast returns id's toast record, or nil.
func (s *Store) Toast(id NodeID) *Toast { return s.toasts[id] }
