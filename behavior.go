package glint

// updateBehaviors runs the simple per-tick maintenance passes: range
// clamps and toast timers. dt is the tick delta in seconds.
func (e *Engine) updateBehaviors(dt float32) {
	for _, r := range e.store.rangesF {
		if r.Value < r.Min {
			r.Value = r.Min
		}
		if r.Value > r.Max {
			r.Value = r.Max
		}
	}
	for _, r := range e.store.rangesI {
		if r.Value < r.Min {
			r.Value = r.Min
		}
		if r.Value > r.Max {
			r.Value = r.Max
		}
	}
	for _, t := range e.store.toasts {
		if t.Dismissed {
			continue
		}
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			t.Dismissed = true
		}
	}
}
