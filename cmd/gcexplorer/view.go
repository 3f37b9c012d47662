package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/joshuapare/gckit/heap"
)

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.showHelp {
		// Rebuilt every render: Update returns copies, so a stored pointer
		// would go stale.
		return overlay.New(
			helpView{m: &m},
			mainView{m: &m},
			overlay.Center,
			overlay.Center,
			0,
			0,
		).View()
	}
	return m.renderMain()
}

// renderMain renders header, panes and status without any overlay.
func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderPanes(),
		m.renderStatus(),
	)
}

func (m Model) renderHeader() string {
	s := m.vm.Stats()
	title := headerStyle.Render("Mark-Compact Heap Explorer")
	summary := subtleStyle.Render(fmt.Sprintf(
		"live %d/%d slots  stack %d/%d  allocs %d  collections %d (%d forced)",
		s.Live, s.HeapSlots, s.StackDepth, m.vm.Roots().Cap(), s.Allocs, s.Collections, s.ForcedCycles))
	return lipgloss.JoinVertical(lipgloss.Left, title, summary, "")
}

func (m Model) renderPanes() string {
	rows := m.paneRows()
	heapWidth := m.width*3/5 - 4
	if heapWidth < 30 {
		heapWidth = 30
	}
	stackWidth := m.width - heapWidth - 8
	if stackWidth < 16 {
		stackWidth = 16
	}

	heapPane := paneStyle.Width(heapWidth).Height(rows + 1).Render(
		paneTitleStyle.Render("Heap") + "\n" + m.renderSlots(rows))
	stackPane := paneStyle.Width(stackWidth).Height(rows + 1).Render(
		paneTitleStyle.Render("Stack (top first)") + "\n" + m.renderStack(rows))

	return lipgloss.JoinHorizontal(lipgloss.Top, heapPane, stackPane)
}

// renderSlots lists the visible slots below the allocation cursor.
func (m Model) renderSlots(rows int) string {
	n := m.vm.LiveObjectCount()
	if n == 0 {
		return nilStyle.Render("(empty)")
	}
	h := m.vm.Heap()
	lines := make([]string, 0, rows)
	for i := m.offset; i < n && i < m.offset+rows; i++ {
		line := slotLine(h, heap.RefAt(i))
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func slotLine(h *heap.Heap, r heap.Ref) string {
	switch h.Kind(r) {
	case heap.KindInt:
		return fmt.Sprintf("%s  %s", r, intStyle.Render(fmt.Sprintf("int  %d", h.Int(r))))
	case heap.KindPair:
		return fmt.Sprintf("%s  %s", r, pairStyle.Render(fmt.Sprintf("pair (%s . %s)", h.Head(r), h.Tail(r))))
	default:
		return fmt.Sprintf("%s  %s", r, errorStyle.Render(h.Kind(r).String()))
	}
}

func (m Model) renderStack(rows int) string {
	st := m.vm.Roots()
	if st.Len() == 0 {
		return nilStyle.Render("(empty)")
	}
	lines := make([]string, 0, rows)
	for i := st.Len() - 1; i >= 0 && len(lines) < rows; i-- {
		r := st.Root(i)
		if r.IsNil() {
			lines = append(lines, fmt.Sprintf("[%d] %s", i, nilStyle.Render("nil")))
			continue
		}
		lines = append(lines, fmt.Sprintf("[%d] %s", i, r))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	var line string
	switch {
	case m.inputMode == IntInputMode:
		line = m.input.View()
	case m.statusMessage != "":
		line = statusMessageStyle.Render(m.statusMessage)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		statusStyle.Render(line),
		statusStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())),
	)
}

// mainView adapts the main screen to tea.Model for the overlay background.
type mainView struct {
	m *Model
}

func (v mainView) Init() tea.Cmd                       { return nil }
func (v mainView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v mainView) View() string                        { return v.m.renderMain() }

// helpView renders the key reference box.
type helpView struct {
	m *Model
}

func (v helpView) Init() tea.Cmd                       { return nil }
func (v helpView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v helpView) View() string {
	title := paneTitleStyle.Render("Keys")
	body := v.m.help.FullHelpView(v.m.keys.FullHelp())
	return helpBoxStyle.Render(title + "\n\n" + body + "\n\n" + nilStyle.Render("press any key to close"))
}
