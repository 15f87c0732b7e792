package glint

import tea "github.com/charmbracelet/bubbletea"

// SnapshotFromKey translates a bubbletea key message into an input
// snapshot for one tick. Arrow keys map to the plain directional axes,
// alt-arrows to the modifier-chorded pane axes, and printable keys to the
// raw rune. Hosts running under bubbletea call this once per KeyMsg and
// feed the result to Engine.Tick.
func SnapshotFromKey(msg tea.KeyMsg) Snapshot {
	s := Snapshot{Active: true}

	switch msg.Type {
	case tea.KeyUp:
		if msg.Alt {
			s.PaneY = -1
		} else {
			s.AxisY = -1
		}
	case tea.KeyDown:
		if msg.Alt {
			s.PaneY = 1
		} else {
			s.AxisY = 1
		}
	case tea.KeyLeft:
		if msg.Alt {
			s.PaneX = -1
		} else {
			s.AxisX = -1
		}
	case tea.KeyRight:
		if msg.Alt {
			s.PaneX = 1
		} else {
			s.AxisX = 1
		}
	case tea.KeyShiftUp:
		s.PaneY = -1
	case tea.KeyShiftDown:
		s.PaneY = 1
	case tea.KeyShiftLeft:
		s.PaneX = -1
	case tea.KeyShiftRight:
		s.PaneX = 1
	case tea.KeyEnter:
		s.Accept = true
	case tea.KeyEsc:
		s.Cancel = true
	case tea.KeyTab:
		s.Tab = true
	case tea.KeyShiftTab:
		s.ShiftTab = true
	case tea.KeyHome:
		s.Home = true
	case tea.KeyEnd:
		s.End = true
	case tea.KeyPgUp:
		s.PageUp = true
	case tea.KeyPgDown:
		s.PageDown = true
	case tea.KeyBackspace:
		s.Backspace = true
	case tea.KeyDelete:
		s.Delete = true
	case tea.KeyCtrlO:
		s.Move = true
	case tea.KeySpace:
		s.Rune = ' '
		s.HasRune = true
	case tea.KeyRunes:
		if len(msg.Runes) > 0 && !msg.Alt {
			s.Rune = msg.Runes[0]
			s.HasRune = true
		}
	}

	return s
}
