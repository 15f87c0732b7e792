package glint

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	// defaultMaxBytes bounds a text buffer when the field does not set
	// its own limit.
	defaultMaxBytes = 255
	// defaultFieldWidth is the visible window in display columns.
	defaultFieldWidth = 30
)

// TextBuffer is the mutable editing state of a text field. The cursor is
// a logical rune position; the byte length differs from the rune count
// for variable-width encodings.
type TextBuffer struct {
	text   []byte
	runes  int
	cursor int

	// Selection anchors, reserved. -1 when inactive.
	selStart, selEnd int

	// scrollX is the horizontal scroll offset in display columns.
	scrollX int

	init bool
}

// String returns the buffer contents.
func (b *TextBuffer) String() string { return string(b.text) }

// Len returns the logical character count.
func (b *TextBuffer) Len() int { return b.runes }

// ByteLen returns the encoded length in bytes.
func (b *TextBuffer) ByteLen() int { return len(b.text) }

// Cursor returns the logical cursor position, in [0, Len()].
func (b *TextBuffer) Cursor() int { return b.cursor }

// ScrollX returns the horizontal scroll offset in display columns.
func (b *TextBuffer) ScrollX() int { return b.scrollX }

// SetText replaces the buffer contents and places the cursor at the end.
func (b *TextBuffer) SetText(s string) {
	b.ensure()
	b.text = append(b.text[:0], s...)
	b.runes = utf8.RuneCount(b.text)
	b.cursor = b.runes
}

// ensure performs the one-time init.
func (b *TextBuffer) ensure() {
	if b.init {
		return
	}
	b.init = true
	b.selStart = -1
	b.selEnd = -1
}

// byteAt returns the byte offset of the given logical cursor position.
func (b *TextBuffer) byteAt(cursor int) int {
	off := 0
	for i := 0; i < cursor && off < len(b.text); i++ {
		_, size := utf8.DecodeRune(b.text[off:])
		off += size
	}
	return off
}

// insertRune inserts r at the cursor, shifting the tail right. Rejected
// once the encoded length would exceed maxBytes.
func (b *TextBuffer) insertRune(r rune, maxBytes int) bool {
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	if len(b.text)+n > maxBytes {
		return false
	}
	pos := b.byteAt(b.cursor)
	b.text = append(b.text, enc[:n]...)
	copy(b.text[pos+n:], b.text[pos:])
	copy(b.text[pos:], enc[:n])
	b.cursor++
	b.runes++
	return true
}

// deleteBefore removes the character before the cursor. No-op at 0.
func (b *TextBuffer) deleteBefore() bool {
	if b.cursor == 0 {
		return false
	}
	start := b.byteAt(b.cursor - 1)
	end := b.byteAt(b.cursor)
	b.text = append(b.text[:start], b.text[end:]...)
	b.cursor--
	b.runes--
	return true
}

// deleteAt removes the character at the cursor. No-op at end of text.
func (b *TextBuffer) deleteAt() bool {
	if b.cursor >= b.runes {
		return false
	}
	start := b.byteAt(b.cursor)
	end := b.byteAt(b.cursor + 1)
	b.text = append(b.text[:start], b.text[end:]...)
	b.runes--
	return true
}

// cursorColumn returns the cursor's display column, wide runes counted.
func (b *TextBuffer) cursorColumn() int {
	return runewidth.StringWidth(string(b.text[:b.byteAt(b.cursor)]))
}

// followCursor recomputes the horizontal scroll so the cursor stays
// inside the visible window: scrollX <= column < scrollX+width.
func (b *TextBuffer) followCursor(width int) {
	col := b.cursorColumn()
	if col < b.scrollX {
		b.scrollX = col
	}
	if col >= b.scrollX+width {
		b.scrollX = col - width + 1
	}
	if b.scrollX < 0 {
		b.scrollX = 0
	}
}

// printable reports whether r may be typed into a buffer. Control codes
// and malformed input are ignored by this filter.
func printable(r rune) bool {
	return r >= ' ' && unicode.IsPrint(r)
}

// processText turns the tick's raw keystrokes into edits on every text
// field whose node is both selected and focused: a field must be
// addressable via navigation and be the current input target to accept
// typing.
func (e *Engine) processText(in, prev Snapshot) {
	for id := NodeID(0); int(id) < e.tree.Len(); id++ {
		field := e.store.TextField(id)
		if field == nil {
			continue
		}
		buf := e.store.Buffer(id)
		buf.ensure()

		sel := e.store.Selectable(id)
		if sel == nil || !sel.Selected || !e.store.Interact(id).Focused {
			continue
		}
		if !in.Active {
			continue
		}

		maxBytes := field.MaxLen
		if maxBytes <= 0 {
			maxBytes = defaultMaxBytes
		}
		modified := false

		if in.HasRune && printable(in.Rune) {
			modified = buf.insertRune(in.Rune, maxBytes) || modified
		}
		if in.Backspace {
			modified = buf.deleteBefore() || modified
		}
		if in.Delete {
			modified = buf.deleteAt() || modified
		}

		left, right := in.AxisEdges(Horizontal, prev)
		if left && buf.cursor > 0 {
			buf.cursor--
		}
		if right && buf.cursor < buf.runes {
			buf.cursor++
		}
		if in.HomeEdge(prev) {
			buf.cursor = 0
		}
		if in.EndEdge(prev) {
			buf.cursor = buf.runes
		}

		// Submit never inserts anything itself.
		if in.AcceptEdge(prev) && !field.Multiline && field.OnSubmit != nil {
			field.OnSubmit(buf.String())
		}

		if modified && field.OnChange != nil {
			field.OnChange(buf.String())
		}

		width := field.Width
		if width <= 0 {
			width = defaultFieldWidth
		}
		buf.followCursor(width)
	}
}

// TextInputActive reports whether any text field is currently selected
// and focused. Hosts use this to suppress global hotkeys while typing.
func (e *Engine) TextInputActive() bool {
	for id := NodeID(0); int(id) < e.tree.Len(); id++ {
		if e.store.TextField(id) == nil {
			continue
		}
		sel := e.store.Selectable(id)
		if sel != nil && sel.Selected && e.store.Interact(id).Focused {
			return true
		}
	}
	return false
}
