package glint

import "sort"

// FocusRing is the flat, scope-independent tab-order cycle over every
// focusable node. It exists for simple linear traversal when no
// scope-based grouping applies.
type FocusRing struct {
	Count   int
	Index   int
	Focused NodeID
}

// updateFocusRing advances the ring on tab/shift-tab edges and rewrites
// the focused flag across all focusables. The ring index is always taken
// modulo the live count; a zero count clears the focused handle.
func (e *Engine) updateFocusRing(in, prev Snapshot) {
	ring := e.ringCandidates()
	e.ring.Count = len(ring)
	if len(ring) == 0 {
		e.ring.Index = 0
		e.ring.Focused = None
		return
	}

	if in.Active {
		if in.TabEdge(prev) {
			e.ring.Index = (e.ring.Index + 1) % len(ring)
		}
		if in.ShiftTabEdge(prev) {
			e.ring.Index = (e.ring.Index - 1 + len(ring)) % len(ring)
		}
	}
	e.ring.Index %= len(ring)
	e.ring.Focused = ring[e.ring.Index]

	for _, id := range ring {
		e.store.Interact(id).Focused = id == e.ring.Focused
	}
}

// ringCandidates returns all focusable nodes ordered by tab order,
// falling back to tree order for ties.
func (e *Engine) ringCandidates() []NodeID {
	var out []NodeID
	for id := NodeID(0); int(id) < e.tree.Len(); id++ {
		if e.store.Focusable(id) != nil {
			out = append(out, id)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return e.store.Focusable(out[i]).TabOrder < e.store.Focusable(out[j]).TabOrder
	})
	return out
}
