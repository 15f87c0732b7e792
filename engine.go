package glint

// Engine is the focus and navigation engine. It runs once per host tick
// over a tree of addressable nodes and their behavioral components,
// deciding what is selected, what is focused, how overlays stack and how
// keystrokes become text edits. It owns no rendering and reads no I/O
// beyond the snapshot handed to Tick.
//
// usage:
//
//	tree := glint.NewTree(64)
//	store := glint.NewStore()
//	eng := glint.NewEngine(tree, store)
//	// ... build nodes, attach components ...
//	eng.Tick(snapshot, dt)
type Engine struct {
	tree  *Tree
	store *Store

	active ActiveScope
	ring   FocusRing
	drag   DragState

	// lastFocused tracks ring focus between ticks for window raising.
	lastFocused NodeID

	screenW, screenH int

	prev Snapshot
}

// NewEngine creates an engine over the given tree and store. The engine
// holds handles into both but owns neither.
func NewEngine(tree *Tree, store *Store) *Engine {
	return &Engine{
		tree:        tree,
		store:       store,
		drag:        DragState{Target: None},
		ring:        FocusRing{Focused: None},
		lastFocused: None,
	}
}

// SetScreenSize sets the bounds used to clamp dragged overlays.
func (e *Engine) SetScreenSize(w, h int) {
	e.screenW = w
	e.screenH = h
}

// Tree returns the node tree the engine evaluates.
func (e *Engine) Tree() *Tree { return e.tree }

// Store returns the component store the engine reads and writes.
func (e *Engine) Store() *Store { return e.store }

// Active returns the active-scope pointer for push/pop by hosts showing
// modal scopes.
func (e *Engine) Active() *ActiveScope { return &e.active }

// Ring returns the global focus ring state.
func (e *Engine) Ring() *FocusRing { return &e.ring }

// Drag returns the persistent drag state.
func (e *Engine) Drag() *DragState { return &e.drag }

// Tick evaluates one input tick. The order is load-bearing: overlays
// dismiss and re-stack before navigation so a dismissed modal cannot
// leave a stale active scope; drag runs before navigation so move mode
// exclusively consumes directional input; pane switching reads the
// post-cycle active scope; scroll-follow then sees the newly active
// pane's selection in the same tick. The snapshot is cached as previous
// only at the very end, after every consumer has compared against it.
func (e *Engine) Tick(in Snapshot, dt float32) {
	prev := e.prev

	e.resolveOverlays(in, prev)
	consumed := e.updateDrag(in, prev)
	if !consumed {
		e.runScopes(in, prev)
	}
	e.routePaneSwitch(in, prev)
	e.trackScroll(in, prev)
	e.updateFocusRing(in, prev)
	e.processText(in, prev)
	e.updateBehaviors(dt)

	e.prev = in
}
