package glint

// ActiveScope names the navigation scope currently receiving directional
// input. Modal scopes push onto it, temporarily shadowing the outer scope;
// popping the last entry clears it back to none (global), at which point
// every scope receives directional input.
type ActiveScope struct {
	stack []NodeID
}

// Node returns the active scope node, or None.
func (a *ActiveScope) Node() NodeID {
	if len(a.stack) == 0 {
		return None
	}
	return a.stack[len(a.stack)-1]
}

// Depth returns the current nesting depth.
func (a *ActiveScope) Depth() int { return len(a.stack) }

// Push makes n the active scope, shadowing the previous one.
func (a *ActiveScope) Push(n NodeID) {
	a.stack = append(a.stack, n)
}

// Pop restores the previously active scope. Popping the last entry
// clears the active scope.
func (a *ActiveScope) Pop() {
	if len(a.stack) > 0 {
		a.stack = a.stack[:len(a.stack)-1]
	}
}

// Set replaces the active scope without changing the nesting depth.
func (a *ActiveScope) Set(n NodeID) {
	if len(a.stack) == 0 {
		a.stack = append(a.stack, n)
		return
	}
	a.stack[len(a.stack)-1] = n
}

// Clear drops all nesting and returns to the global state.
func (a *ActiveScope) Clear() {
	a.stack = a.stack[:0]
}

// runScopes updates every navigation scope for one tick: re-enumerate
// candidates, clamp the persisted index, cycle on directional edges
// matching the scope axis, then rewrite the selected flag on every
// candidate. The rewrite is a full idempotent pass, not a delta, so
// exclusivity holds even if something mutated state out of band.
func (e *Engine) runScopes(in, prev Snapshot) {
	for id := NodeID(0); int(id) < e.tree.Len(); id++ {
		scope := e.store.Scope(id)
		if scope == nil {
			continue
		}

		candidates := e.scopeCandidates(id)
		scope.ChildCount = len(candidates)
		if len(candidates) == 0 {
			continue
		}
		scope.Index = clampIndex(scope.Index, len(candidates))

		// Directional input goes to the active scope only; with no
		// active scope every scope reacts (the global state).
		receives := e.active.Node() == None || e.active.Node() == id
		if receives && in.Active {
			neg, pos := in.AxisEdges(scope.Axis, prev)
			if neg {
				scope.Index = cycleIndex(scope.Index, len(candidates), -1, scope.Wrap)
			}
			if pos {
				scope.Index = cycleIndex(scope.Index, len(candidates), +1, scope.Wrap)
			}
		}

		for i, c := range candidates {
			selected := i == scope.Index
			e.store.Selectable(c).Selected = selected
			e.store.Interact(c).Selected = selected
		}

		if receives && in.AcceptEdge(prev) {
			e.activateSelected(candidates[scope.Index])
		}
	}
}

// scopeCandidates returns the scope node's direct selectable children in
// tree order.
func (e *Engine) scopeCandidates(id NodeID) []NodeID {
	var out []NodeID
	for c := range e.tree.Children(id) {
		if e.store.Selectable(c) != nil {
			out = append(out, c)
		}
	}
	return out
}

// activateSelected fires the accept action for a selected child: a
// collapsible container toggles, an activatable leaf invokes its callback
// once. The two are mutually exclusive in this model.
func (e *Engine) activateSelected(id NodeID) {
	if e.store.Interact(id).Disabled {
		return
	}
	if col := e.store.Collapse(id); col != nil {
		col.Collapsed = !col.Collapsed
		return
	}
	if fn := e.store.Activation(id); fn != nil {
		fn()
	}
}
