package glint

// DragState is the engine-owned half of window dragging. It lives here
// rather than on the Draggable record because that record may be
// recreated by composition every tick; the engine re-projects Moving onto
// it each tick while active.
type DragState struct {
	Target NodeID
	Moving bool
}

// updateDrag runs the two-state drag machine (idle, moving) for the
// topmost visible draggable overlay. Returns true when the tick's
// directional input belongs to the drag, in which case navigation is
// skipped: either the selection cycles or the window moves, never both.
func (e *Engine) updateDrag(in, prev Snapshot) bool {
	target := e.topmostDraggable()
	if target != e.drag.Target {
		// Switching target resets to idle.
		e.drag.Target = target
		e.drag.Moving = false
	}
	if target == None {
		return false
	}

	d := e.store.Draggable(target)
	consumed := e.drag.Moving

	if in.Active {
		if in.MoveEdge(prev) {
			e.drag.Moving = !e.drag.Moving
			if e.drag.Moving {
				consumed = true
			}
		}
		if e.drag.Moving {
			switch {
			case in.AcceptEdge(prev), in.CancelEdge(prev):
				e.drag.Moving = false
			default:
				e.nudge(d, in, prev)
			}
		}
	}

	d.Moving = e.drag.Moving
	return consumed
}

// nudge moves the target by one cell per directional edge, clamped so the
// overlay never leaves the visible screen.
func (e *Engine) nudge(d *Draggable, in, prev Snapshot) {
	left, right := in.AxisEdges(Horizontal, prev)
	up, down := in.AxisEdges(Vertical, prev)
	if left {
		d.X--
	}
	if right {
		d.X++
	}
	if up {
		d.Y--
	}
	if down {
		d.Y++
	}
	d.X = clampCell(d.X, e.screenW-d.W)
	d.Y = clampCell(d.Y, e.screenH-d.H)
}

// clampCell forces a position into [1, limit], never inverting when the
// overlay is larger than the screen.
func clampCell(v, limit int) int {
	if limit < 1 {
		limit = 1
	}
	if v < 1 {
		return 1
	}
	if v > limit {
		return limit
	}
	return v
}

// topmostDraggable returns the visible draggable overlay with the highest
// z, re-selected every tick.
func (e *Engine) topmostDraggable() NodeID {
	best := None
	bestZ := 0
	for id := NodeID(0); int(id) < e.tree.Len(); id++ {
		ov := e.store.Overlay(id)
		if ov == nil || !ov.Visible || e.store.Draggable(id) == nil {
			continue
		}
		if best == None || ov.Z > bestZ {
			best = id
			bestZ = ov.Z
		}
	}
	return best
}
