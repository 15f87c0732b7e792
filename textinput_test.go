package glint

import "testing"

func newFieldFixture(cfg TextField) (*Engine, NodeID) {
	tr := NewTree(8)
	st := NewStore()
	root := tr.Add(None)
	st.SetScope(root, NavScope{Axis: Vertical})
	field := tr.Add(root)
	st.SetSelectable(field)
	st.SetFocusable(field, 0)
	st.SetTextField(field, cfg)
	return NewEngine(tr, st), field
}

func typeString(e *Engine, s string) {
	for _, r := range s {
		press(e, Snapshot{HasRune: true, Rune: r})
	}
}

func TestTextEditing(t *testing.T) {
	t.Run("typed runes append at cursor", func(t *testing.T) {
		e, field := newFieldFixture(TextField{})
		typeString(e, "hello")
		buf := e.Store().Buffer(field)
		if buf.String() != "hello" {
			t.Errorf("expected %q, got %q", "hello", buf.String())
		}
		if buf.Cursor() != 5 {
			t.Errorf("expected cursor 5, got %d", buf.Cursor())
		}
	})

	t.Run("backspace twice from end of hello", func(t *testing.T) {
		e, field := newFieldFixture(TextField{})
		typeString(e, "hello")
		press(e, Snapshot{Backspace: true})
		press(e, Snapshot{Backspace: true})
		buf := e.Store().Buffer(field)
		if buf.String() != "hel" {
			t.Errorf("expected %q, got %q", "hel", buf.String())
		}
		if buf.Cursor() != 3 {
			t.Errorf("expected cursor 3, got %d", buf.Cursor())
		}
	})

	t.Run("backspace at start is a no-op", func(t *testing.T) {
		e, field := newFieldFixture(TextField{})
		typeString(e, "ab")
		press(e, Snapshot{Home: true})
		press(e, Snapshot{Backspace: true})
		buf := e.Store().Buffer(field)
		if buf.String() != "ab" || buf.Cursor() != 0 {
			t.Errorf("expected ab/0, got %q/%d", buf.String(), buf.Cursor())
		}
	})

	t.Run("delete removes at cursor and stops at end", func(t *testing.T) {
		e, field := newFieldFixture(TextField{})
		typeString(e, "abc")
		press(e, Snapshot{Home: true})
		press(e, Snapshot{Delete: true})
		buf := e.Store().Buffer(field)
		if buf.String() != "bc" {
			t.Errorf("expected %q, got %q", "bc", buf.String())
		}
		press(e, Snapshot{End: true})
		press(e, Snapshot{Delete: true})
		if buf.String() != "bc" {
			t.Errorf("expected delete at end to no-op, got %q", buf.String())
		}
	})

	t.Run("insert then delete restores buffer and cursor", func(t *testing.T) {
		e, field := newFieldFixture(TextField{})
		typeString(e, "abcd")
		press(e, Snapshot{AxisX: -1})
		press(e, Snapshot{AxisX: -1})
		buf := e.Store().Buffer(field)
		cursor := buf.Cursor()
		press(e, Snapshot{HasRune: true, Rune: 'x'})
		press(e, Snapshot{Backspace: true})
		if buf.String() != "abcd" {
			t.Errorf("expected round trip to %q, got %q", "abcd", buf.String())
		}
		if buf.Cursor() != cursor {
			t.Errorf("expected cursor restored to %d, got %d", cursor, buf.Cursor())
		}
	})

	t.Run("cursor clamps to buffer ends", func(t *testing.T) {
		e, field := newFieldFixture(TextField{})
		typeString(e, "ab")
		for i := 0; i < 5; i++ {
			press(e, Snapshot{AxisX: -1})
		}
		buf := e.Store().Buffer(field)
		if buf.Cursor() != 0 {
			t.Errorf("expected cursor 0, got %d", buf.Cursor())
		}
		for i := 0; i < 5; i++ {
			press(e, Snapshot{AxisX: 1})
		}
		if buf.Cursor() != 2 {
			t.Errorf("expected cursor 2, got %d", buf.Cursor())
		}
	})

	t.Run("multibyte runes keep byte length consistent", func(t *testing.T) {
		e, field := newFieldFixture(TextField{})
		typeString(e, "héllo")
		buf := e.Store().Buffer(field)
		if buf.Len() != 5 {
			t.Errorf("expected 5 logical chars, got %d", buf.Len())
		}
		if buf.ByteLen() != 6 {
			t.Errorf("expected 6 bytes, got %d", buf.ByteLen())
		}
		press(e, Snapshot{Backspace: true}) // remove 'o'
		press(e, Snapshot{Backspace: true}) // remove 'l'
		press(e, Snapshot{Backspace: true}) // remove 'l'
		press(e, Snapshot{Backspace: true}) // remove 'é'
		if buf.String() != "h" {
			t.Errorf("expected %q, got %q", "h", buf.String())
		}
		if buf.ByteLen() != 1 {
			t.Errorf("expected 1 byte, got %d", buf.ByteLen())
		}
	})

	t.Run("control runes are ignored", func(t *testing.T) {
		e, field := newFieldFixture(TextField{})
		press(e, Snapshot{HasRune: true, Rune: 0x07})
		if got := e.Store().Buffer(field).String(); got != "" {
			t.Errorf("expected control rune rejected, got %q", got)
		}
	})

	t.Run("max length rejects further input", func(t *testing.T) {
		e, field := newFieldFixture(TextField{MaxLen: 3})
		typeString(e, "abcdef")
		if got := e.Store().Buffer(field).String(); got != "abc" {
			t.Errorf("expected %q, got %q", "abc", got)
		}
	})
}

func TestTextCallbacks(t *testing.T) {
	t.Run("change fires on mutation only", func(t *testing.T) {
		var changes []string
		e, _ := newFieldFixture(TextField{
			OnChange: func(s string) { changes = append(changes, s) },
		})
		typeString(e, "ab")
		press(e, Snapshot{AxisX: -1}) // pure cursor move
		press(e, Snapshot{Home: true})
		if len(changes) != 2 {
			t.Fatalf("expected 2 change calls, got %d", len(changes))
		}
		if changes[1] != "ab" {
			t.Errorf("expected last change %q, got %q", "ab", changes[1])
		}
	})

	t.Run("submit carries contents and inserts nothing", func(t *testing.T) {
		var submitted []string
		e, field := newFieldFixture(TextField{
			OnSubmit: func(s string) { submitted = append(submitted, s) },
		})
		typeString(e, "hi")
		press(e, Snapshot{Accept: true})
		if len(submitted) != 1 || submitted[0] != "hi" {
			t.Fatalf("expected one submit of %q, got %v", "hi", submitted)
		}
		if got := e.Store().Buffer(field).String(); got != "hi" {
			t.Errorf("expected buffer unchanged, got %q", got)
		}
	})

	t.Run("multiline does not submit", func(t *testing.T) {
		count := 0
		e, _ := newFieldFixture(TextField{
			Multiline: true,
			OnSubmit:  func(string) { count++ },
		})
		typeString(e, "hi")
		press(e, Snapshot{Accept: true})
		if count != 0 {
			t.Errorf("expected no submit in multiline mode, got %d", count)
		}
	})
}

func TestTextGating(t *testing.T) {
	t.Run("unfocused field ignores input", func(t *testing.T) {
		e, field := newFieldFixture(TextField{})
		// A second focusable steals initial focus by tab order.
		other := e.Tree().Add(0)
		e.Store().SetFocusable(other, -1)
		typeString(e, "hi")
		if got := e.Store().Buffer(field).String(); got != "" {
			t.Errorf("expected no edits without focus, got %q", got)
		}
		if e.TextInputActive() {
			t.Error("expected text input inactive")
		}
	})

	t.Run("unselected field ignores input", func(t *testing.T) {
		e, field := newFieldFixture(TextField{})
		// Add a sibling candidate and move selection onto it.
		e.Store().SetSelectable(e.Tree().Add(0))
		press(e, Snapshot{AxisY: 1})
		typeString(e, "hi")
		if got := e.Store().Buffer(field).String(); got != "" {
			t.Errorf("expected no edits without selection, got %q", got)
		}
	})

	t.Run("active query sees focused selected field", func(t *testing.T) {
		e, _ := newFieldFixture(TextField{})
		e.Tick(Snapshot{}, 0)
		if !e.TextInputActive() {
			t.Error("expected text input active")
		}
	})
}

func TestTextScrollFollow(t *testing.T) {
	t.Run("cursor past window scrolls right", func(t *testing.T) {
		e, field := newFieldFixture(TextField{Width: 5})
		typeString(e, "abcdefgh")
		buf := e.Store().Buffer(field)
		if buf.ScrollX() != 4 {
			t.Errorf("expected scroll 4, got %d", buf.ScrollX())
		}
	})

	t.Run("cursor before window scrolls left", func(t *testing.T) {
		e, field := newFieldFixture(TextField{Width: 5})
		typeString(e, "abcdefgh")
		press(e, Snapshot{Home: true})
		buf := e.Store().Buffer(field)
		if buf.ScrollX() != 0 {
			t.Errorf("expected scroll 0, got %d", buf.ScrollX())
		}
	})

	t.Run("wide runes scroll by display column", func(t *testing.T) {
		e, field := newFieldFixture(TextField{Width: 5})
		typeString(e, "日本語")
		buf := e.Store().Buffer(field)
		// Cursor sits at column 6; window keeps it at the right edge.
		if buf.ScrollX() != 2 {
			t.Errorf("expected scroll 2, got %d", buf.ScrollX())
		}
	})
}
