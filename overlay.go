package glint

// Windows stack inside a reserved z-band. Raising assigns max+1; when an
// assignment would leave the band the in-use values are compacted back
// down to the floor, preserving relative order, so z values never grow
// unbounded across a session.
const (
	windowZFloor = 100
	windowZCeil  = 10000
)

// resolveOverlays runs the two per-tick overlay duties: dismiss routing on
// a cancel edge, and raising the window that owns the focused node. It
// runs before navigation so a freshly dismissed modal cannot leave a
// stale active scope behind.
func (e *Engine) resolveOverlays(in, prev Snapshot) {
	if in.Active && in.CancelEdge(prev) {
		e.dismissTopmost()
	}
	e.raiseFocusedWindow()
}

// dismissTopmost closes the visible overlay with the highest z among
// modals first, then among plain windows. Modals always win dismiss
// routing. The dismiss callback fires exactly once; an overlay that had
// pushed a navigation scope pops it.
func (e *Engine) dismissTopmost() {
	target := e.topmostOverlay(true)
	if target == None {
		target = e.topmostOverlay(false)
	}
	if target == None {
		return
	}

	ov := e.store.Overlay(target)
	ov.Visible = false
	if ov.PushedScope {
		e.active.Pop()
	}
	if ov.OnDismiss != nil {
		ov.OnDismiss()
	}
}

// topmostOverlay returns the visible overlay with the highest z in the
// requested class, or None.
func (e *Engine) topmostOverlay(modal bool) NodeID {
	best := None
	bestZ := 0
	for id := NodeID(0); int(id) < e.tree.Len(); id++ {
		ov := e.store.Overlay(id)
		if ov == nil || !ov.Visible || ov.Modal != modal {
			continue
		}
		if best == None || ov.Z > bestZ {
			best = id
			bestZ = ov.Z
		}
	}
	return best
}

// raiseFocusedWindow re-stacks windows when global focus moves into one
// that is not already topmost.
func (e *Engine) raiseFocusedWindow() {
	focused := e.ring.Focused
	if focused == e.lastFocused {
		return
	}
	e.lastFocused = focused
	if focused == None {
		return
	}

	win := e.owningWindow(focused)
	if win == None {
		return
	}

	ov := e.store.Overlay(win)
	maxZ, topmost := e.windowMaxZ()
	if topmost == win {
		return
	}

	if maxZ+1 >= windowZCeil {
		e.compactWindowZ()
		maxZ, _ = e.windowMaxZ()
	}
	ov.Z = maxZ + 1
}

// owningWindow returns the visible non-modal overlay that is, or
// contains, the given node. None if the node lives outside any window.
func (e *Engine) owningWindow(id NodeID) NodeID {
	for n := id; n != None; n = e.tree.Parent(n) {
		ov := e.store.Overlay(n)
		if ov != nil && ov.Visible && !ov.Modal {
			return n
		}
	}
	return None
}

// windowMaxZ returns the highest z among visible windows and its owner.
func (e *Engine) windowMaxZ() (int, NodeID) {
	maxZ := 0
	top := None
	for id := NodeID(0); int(id) < e.tree.Len(); id++ {
		ov := e.store.Overlay(id)
		if ov == nil || !ov.Visible || ov.Modal {
			continue
		}
		if top == None || ov.Z > maxZ {
			maxZ = ov.Z
			top = id
		}
	}
	return maxZ, top
}

// compactWindowZ re-bases every visible window's z onto the band floor,
// preserving relative order.
func (e *Engine) compactWindowZ() {
	minZ := 0
	found := false
	for id := NodeID(0); int(id) < e.tree.Len(); id++ {
		ov := e.store.Overlay(id)
		if ov == nil || !ov.Visible || ov.Modal {
			continue
		}
		if !found || ov.Z < minZ {
			minZ = ov.Z
			found = true
		}
	}
	if !found {
		return
	}
	for id := NodeID(0); int(id) < e.tree.Len(); id++ {
		ov := e.store.Overlay(id)
		if ov == nil || !ov.Visible || ov.Modal {
			continue
		}
		ov.Z = ov.Z - minZ + windowZFloor
	}
}
