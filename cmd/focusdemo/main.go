// Command focusdemo exercises the navigation engine under a bubbletea
// host: two list panes in a split, a text field, a draggable window and
// a toast. The engine owns all focus/selection state; this program only
// feeds it key snapshots and paints what the store says.
//
// Keys: arrows navigate, tab cycles focus, alt-arrows switch panes,
// enter activates, ctrl+o toggles window move, esc dismisses, q quits.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"glint"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	activePaneStyle = paneStyle.
			BorderForeground(lipgloss.Color("205"))
	itemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))
	windowStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	movingStyle = windowStyle.
			BorderForeground(lipgloss.Color("214"))
	statusStyle = lipgloss.NewStyle().Faint(true)
	toastStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("70"))
)

type model struct {
	eng *glint.Engine

	leftList  glint.NodeID
	rightList glint.NodeID
	field     glint.NodeID
	window    glint.NodeID
	toast     glint.NodeID

	leftItems  []string
	rightItems []string

	status   string
	lastTick time.Time
}

func newModel() *model {
	tree := glint.NewTree(64)
	store := glint.NewStore()
	m := &model{
		eng:        glint.NewEngine(tree, store),
		leftItems:  []string{"status", "deploys", "incidents", "metrics", "logs"},
		rightItems: []string{"api-gateway", "auth-service", "billing", "search", "worker-pool"},
		lastTick:   time.Now(),
	}

	root := tree.Add(glint.None)
	split := tree.Add(root)
	store.SetSplit(split, glint.Horizontal)

	paneL := tree.Add(split)
	m.leftList = tree.Add(paneL)
	store.SetScope(m.leftList, glint.NavScope{Axis: glint.Vertical, Wrap: true})
	store.SetScrollable(m.leftList, glint.Scrollable{Total: len(m.leftItems), Visible: 4})
	for _, name := range m.leftItems {
		item := tree.Add(m.leftList)
		store.SetSelectable(item)
		store.OnActivate(item, func() { m.status = "opened " + name })
	}

	paneR := tree.Add(split)
	m.rightList = tree.Add(paneR)
	store.SetScope(m.rightList, glint.NavScope{Axis: glint.Vertical, Wrap: true})
	store.SetScrollable(m.rightList, glint.Scrollable{Total: len(m.rightItems), Visible: 4})
	for _, name := range m.rightItems {
		item := tree.Add(m.rightList)
		store.SetSelectable(item)
		store.OnActivate(item, func() { m.status = "selected service " + name })
	}

	// Search field lives in its own single-child scope under the root.
	fieldScope := tree.Add(root)
	store.SetScope(fieldScope, glint.NavScope{Axis: glint.Horizontal})
	m.field = tree.Add(fieldScope)
	store.SetSelectable(m.field)
	store.SetFocusable(m.field, 1)
	store.SetTextField(m.field, glint.TextField{
		Width:    24,
		OnChange: func(s string) { m.status = "searching: " + s },
		OnSubmit: func(s string) { m.status = "search submitted: " + s },
	})

	// A floating, draggable window above everything.
	m.window = tree.Add(root)
	store.SetOverlay(m.window, glint.Overlay{Visible: true, Z: 150})
	store.SetDraggable(m.window, glint.Draggable{X: 30, Y: 4, W: 28, H: 6})
	store.SetFocusable(m.window, 0)
	winScope := tree.Add(m.window)
	store.SetScope(winScope, glint.NavScope{Axis: glint.Vertical, Wrap: true})

	m.toast = tree.Add(root)
	store.SetToast(m.toast, 4.0)

	m.eng.Active().Push(m.leftList)

	w, h := 80, 24
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		w, h = tw, th
	}
	m.eng.SetScreenSize(w, h)
	return m
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.eng.SetScreenSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if msg.String() == "q" && !m.eng.TextInputActive() {
			return m, tea.Quit
		}

		now := time.Now()
		dt := float32(now.Sub(m.lastTick).Seconds())
		m.lastTick = now

		m.eng.Tick(glint.SnapshotFromKey(msg), dt)
		// Release tick so the next press registers as a fresh edge.
		m.eng.Tick(glint.Snapshot{}, 0)
	}
	return m, nil
}

func (m *model) View() string {
	store := m.eng.Store()

	left := m.renderList("views", m.leftList, m.leftItems)
	right := m.renderList("services", m.rightList, m.rightItems)
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	buf := store.Buffer(m.field)
	fieldLine := "search: " + buf.String()
	if store.Interact(m.field).Focused {
		fieldLine += "_"
	}

	var b strings.Builder
	b.WriteString(panes)
	b.WriteString("\n")
	b.WriteString(fieldLine)
	b.WriteString("\n")

	if ov := store.Overlay(m.window); ov != nil && ov.Visible {
		d := store.Draggable(m.window)
		style := windowStyle
		title := "inspector"
		if d.Moving {
			style = movingStyle
			title = "inspector (moving)"
		}
		win := style.Width(d.W - 2).Render(fmt.Sprintf("%s\nz=%d", title, ov.Z))
		b.WriteString(lipgloss.NewStyle().MarginLeft(d.X).Render(win))
		b.WriteString("\n")
	}

	if toast := store.Toast(m.toast); toast != nil && !toast.Dismissed {
		b.WriteString(toastStyle.Render(" arrows navigate · alt-arrows switch panes · ctrl+o move window "))
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	return b.String()
}

func (m *model) renderList(title string, list glint.NodeID, items []string) string {
	store := m.eng.Store()
	sc := store.Scrollable(list)

	lines := []string{title}
	end := sc.Offset + sc.Visible
	if end > len(items) {
		end = len(items)
	}
	i := 0
	for child := range m.eng.Tree().Children(list) {
		if i >= sc.Offset && i < end {
			label := items[i]
			if sel := store.Selectable(child); sel != nil && sel.Selected {
				lines = append(lines, selectedStyle.Render("> "+label))
			} else {
				lines = append(lines, itemStyle.Render(label))
			}
		}
		i++
	}

	style := paneStyle
	if m.eng.Active().Node() == list {
		style = activePaneStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func main() {
	if _, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
