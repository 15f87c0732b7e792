package glint

import "testing"

func TestTreeStructure(t *testing.T) {
	tr := NewTree(8)
	root := tr.Add(None)
	a := tr.Add(root)
	b := tr.Add(root)
	c := tr.Add(root)
	grand := tr.Add(b)

	t.Run("children in tree order", func(t *testing.T) {
		var got []NodeID
		for id := range tr.Children(root) {
			got = append(got, id)
		}
		want := []NodeID{a, b, c}
		if len(got) != len(want) {
			t.Fatalf("expected %d children, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("child %d: expected %d, got %d", i, want[i], got[i])
			}
		}
	})

	t.Run("parent links", func(t *testing.T) {
		if tr.Parent(grand) != b {
			t.Errorf("expected parent %d, got %d", b, tr.Parent(grand))
		}
		if tr.Parent(root) != None {
			t.Errorf("expected root parent None, got %d", tr.Parent(root))
		}
	})

	t.Run("ancestor walk", func(t *testing.T) {
		if !tr.IsAncestor(root, grand) {
			t.Error("root should be ancestor of grand")
		}
		if !tr.IsAncestor(b, grand) {
			t.Error("b should be ancestor of grand")
		}
		if tr.IsAncestor(a, grand) {
			t.Error("a should not be ancestor of grand")
		}
		if !tr.IsAncestor(b, b) {
			t.Error("a node is its own ancestor")
		}
	})

	t.Run("descendants exclude self", func(t *testing.T) {
		var got []NodeID
		for id := range tr.Descendants(b) {
			got = append(got, id)
		}
		if len(got) != 1 || got[0] != grand {
			t.Errorf("expected [%d], got %v", grand, got)
		}
	})

	t.Run("reset clears nodes", func(t *testing.T) {
		tr2 := NewTree(4)
		tr2.Add(None)
		tr2.Reset()
		if tr2.Len() != 0 {
			t.Errorf("expected empty tree after reset, got %d", tr2.Len())
		}
	})
}
