package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/gckit/heap/gc"
	"github.com/joshuapare/gckit/vm"
)

// Layout constants
const (
	HeaderHeight = 3 // title line, summary line, blank
	StatusHeight = 3 // status message, key help, border slack
	MinPaneRows  = 4
)

// InputMode represents different input modes
type InputMode int

const (
	NormalMode InputMode = iota
	IntInputMode
)

// Model is the main application model
type Model struct {
	vm   *vm.VM
	keys KeyMap
	help help.Model

	width  int
	height int

	// Selected heap slot and the first visible one
	cursor int
	offset int

	inputMode InputMode
	input     textinput.Model

	showHelp      bool
	statusMessage string
	lastCycle     *gc.Cycle

	// copyFn writes to the clipboard; replaced in tests
	copyFn func(string) error

	err error
}

// NewModel creates a TUI model driving v.
func NewModel(v *vm.VM) Model {
	ti := textinput.New()
	ti.Placeholder = "integer"
	ti.CharLimit = 24
	ti.Prompt = "int> "

	return Model{
		vm:     v,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  ti,
		copyFn: writeClipboard,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases the VM.
func (m Model) Close() error {
	return m.vm.Close()
}

// paneRows returns how many slot rows fit in the heap pane.
func (m Model) paneRows() int {
	rows := m.height - HeaderHeight - StatusHeight - 2 // pane borders
	if rows < MinPaneRows {
		return MinPaneRows
	}
	return rows
}

// clampCursor keeps the cursor on a slot below the allocation cursor and
// scrolls it into view.
func (m *Model) clampCursor() {
	n := m.vm.LiveObjectCount()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	rows := m.paneRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
