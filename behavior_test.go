package glint

import "testing"

func TestRangeClamps(t *testing.T) {
	tr := NewTree(4)
	st := NewStore()
	root := tr.Add(None)
	f := st.SetRangeF(tr.Add(root), RangeF{Value: 1.5, Min: 0, Max: 1})
	i := st.SetRangeI(tr.Add(root), RangeI{Value: -3, Min: 0, Max: 10})
	e := NewEngine(tr, st)

	e.Tick(Snapshot{}, 0)
	if f.Value != 1 {
		t.Errorf("expected float clamp to 1, got %v", f.Value)
	}
	if i.Value != 0 {
		t.Errorf("expected int clamp to 0, got %d", i.Value)
	}

	f.Value = -0.25
	i.Value = 42
	e.Tick(Snapshot{}, 0)
	if f.Value != 0 {
		t.Errorf("expected float clamp to 0, got %v", f.Value)
	}
	if i.Value != 10 {
		t.Errorf("expected int clamp to 10, got %d", i.Value)
	}
}

func TestToastTimer(t *testing.T) {
	tr := NewTree(4)
	st := NewStore()
	root := tr.Add(None)
	toast := st.SetToast(tr.Add(root), 1.0)
	e := NewEngine(tr, st)

	for i := 0; i < 9; i++ {
		e.Tick(Snapshot{}, 0.1)
	}
	if toast.Dismissed {
		t.Fatal("expected toast alive before duration elapses")
	}
	e.Tick(Snapshot{}, 0.1)
	if !toast.Dismissed {
		t.Error("expected toast dismissed at duration")
	}

	// Stays dismissed; elapsed stops accumulating.
	elapsed := toast.Elapsed
	e.Tick(Snapshot{}, 0.1)
	if toast.Elapsed != elapsed {
		t.Errorf("expected elapsed frozen at %v, got %v", elapsed, toast.Elapsed)
	}
}
