package glint

// cycleIndex computes the next selection index for a delta of ±1.
// With wrap the index jumps across the boundary; without it the boundary
// clamps and the index is unchanged. count must be > 0 (callers guard).
func cycleIndex(current, count, delta int, wrap bool) int {
	next := current + delta
	if next < 0 {
		if wrap {
			return count - 1
		}
		return current
	}
	if next >= count {
		if wrap {
			return 0
		}
		return current
	}
	return next
}

// clampIndex forces an index into [0, count), defaulting to 0 when the
// previous value is no longer valid.
func clampIndex(index, count int) int {
	if index < 0 || index >= count {
		return 0
	}
	return index
}
