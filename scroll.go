package glint

// trackScroll keeps every scrollable viewport in sync for one tick: first
// auto-follow the selection of a scope nested under the scrollable, then
// apply manual paging edges. Both paths funnel through the same final
// clamp, so 0 <= offset <= max(0, total-visible) holds regardless of who
// wrote the offset last.
func (e *Engine) trackScroll(in, prev Snapshot) {
	for id := NodeID(0); int(id) < e.tree.Len(); id++ {
		sc := e.store.Scrollable(id)
		if sc == nil {
			continue
		}

		// Auto-follow: keep the nested scope's selection inside the
		// visible window. Never scrolls when already visible.
		if scope := e.nestedScope(id); scope != nil && sc.Visible > 0 {
			if scope.Index < sc.Offset {
				sc.Offset = scope.Index
			}
			if scope.Index >= sc.Offset+sc.Visible {
				sc.Offset = scope.Index - sc.Visible + 1
			}
		}

		if in.Active {
			if in.PageUpEdge(prev) {
				sc.Offset -= sc.Visible
			}
			if in.PageDownEdge(prev) {
				sc.Offset += sc.Visible
			}
			if in.HomeEdge(prev) {
				sc.Offset = 0
			}
			if in.EndEdge(prev) {
				sc.Offset = sc.Total - sc.Visible
			}
		}

		sc.Offset = clampOffset(sc.Offset, sc.Total, sc.Visible)
	}
}

// clampOffset forces a scroll offset into [0, max(0, total-visible)].
func clampOffset(offset, total, visible int) int {
	maxOffset := total - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}

// nestedScope returns the first navigation scope in id's subtree, or nil.
// The scrollable node itself counts: list-style widgets attach both
// records to one node.
func (e *Engine) nestedScope(id NodeID) *NavScope {
	if sc := e.store.Scope(id); sc != nil {
		return sc
	}
	for d := range e.tree.Descendants(id) {
		if sc := e.store.Scope(d); sc != nil {
			return sc
		}
	}
	return nil
}
