package glint

// routePaneSwitch transfers the active navigation scope to the sibling
// pane of a two-pane split on a modifier-chorded directional edge.
// A horizontal split reacts only to the horizontal chord, a vertical
// split only to the vertical one. Runs after navigation (it reads the
// post-cycle active scope) and before scroll-follow, so the newly active
// pane's selection settles in the same tick.
func (e *Engine) routePaneSwitch(in, prev Snapshot) {
	if !in.Active {
		return
	}
	for id := NodeID(0); int(id) < e.tree.Len(); id++ {
		split := e.store.Split(id)
		if split == nil {
			continue
		}
		neg, pos := in.PaneEdges(split.Axis, prev)
		if !neg && !pos {
			continue
		}

		var panes []NodeID
		for c := range e.tree.Children(id) {
			panes = append(panes, c)
			if len(panes) == 2 {
				break
			}
		}
		if len(panes) < 2 {
			continue
		}

		// Which pane holds the active scope; default to pane 0 when
		// the active scope lives elsewhere (or there is none).
		current := 0
		if act := e.active.Node(); act != None {
			if e.tree.IsAncestor(panes[1], act) {
				current = 1
			}
		}

		target := e.findScopeUnder(panes[1-current])
		if target == None {
			continue
		}
		e.active.Set(target)
		e.store.Scope(target).Index = 0
	}
}

// findScopeUnder returns the first navigation scope among pane's direct
// children, then one level of grandchildren. None if the pane has no
// scope to hand focus to.
func (e *Engine) findScopeUnder(pane NodeID) NodeID {
	for c := range e.tree.Children(pane) {
		if e.store.Scope(c) != nil {
			return c
		}
	}
	for c := range e.tree.Children(pane) {
		for g := range e.tree.Children(c) {
			if e.store.Scope(g) != nil {
				return g
			}
		}
	}
	return None
}
