package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/gckit/cmd/gcexplorer/logger"
	"github.com/joshuapare/gckit/heap"
	"github.com/joshuapare/gckit/heap/printer"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.inputMode == IntInputMode {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// handleInputKey handles keys while the int prompt is open.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Esc):
		m.closeInput()
		m.statusMessage = ""
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		text := strings.TrimSpace(m.input.Value())
		m.closeInput()
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			m.statusMessage = fmt.Sprintf("not an integer: %q", text)
			return m, nil
		}
		ref, err := m.vm.PushInt(n)
		m.report(fmt.Sprintf("pushed %d at %s", n, ref), err)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey handles keys in normal mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes the overlay; q still quits.
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Up):
		m.cursor--
	case key.Matches(msg, m.keys.Down):
		m.cursor++
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		m.cursor = m.vm.LiveObjectCount() - 1

	case key.Matches(msg, m.keys.PushInt):
		m.inputMode = IntInputMode
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.PushNil):
		m.report("pushed nil", m.vm.Push(heap.Nil))

	case key.Matches(msg, m.keys.Pair):
		ref, err := m.vm.PushPair()
		m.report(fmt.Sprintf("pair at %s", ref), err)

	case key.Matches(msg, m.keys.Pop):
		ref, err := m.vm.Pop()
		m.report(fmt.Sprintf("popped %s", ref), err)

	case key.Matches(msg, m.keys.Dup):
		top, err := m.vm.Peek(0)
		if err == nil {
			err = m.vm.Push(top)
		}
		m.report(fmt.Sprintf("dup %s", top), err)

	case key.Matches(msg, m.keys.SetHead):
		m.report("head set", m.setField(true))
	case key.Matches(msg, m.keys.SetTail):
		m.report("tail set", m.setField(false))

	case key.Matches(msg, m.keys.Collect):
		cyc := m.vm.Collect()
		m.lastCycle = &cyc
		m.statusMessage = fmt.Sprintf("gc #%d: %d -> %d live, %d reclaimed", cyc.Seq, cyc.Before, cyc.After, cyc.Reclaimed)
		logger.Info("collect", "seq", cyc.Seq, "before", cyc.Before, "after", cyc.After)

	case key.Matches(msg, m.keys.Copy):
		dump, err := m.dump()
		if err == nil {
			err = m.copyFn(dump)
		}
		m.report("heap dump copied to clipboard", err)
	}

	m.clampCursor()
	return m, nil
}

// setField pops a ref and stores it into the head or tail of the pair left on
// top of the stack. The stack is restored on failure.
func (m *Model) setField(head bool) error {
	src, err := m.vm.Pop()
	if err != nil {
		return err
	}
	dst, err := m.vm.Peek(0)
	if err == nil {
		var obj heap.Object
		obj, err = m.vm.Deref(dst)
		if err == nil {
			if head {
				err = obj.SetHead(src)
			} else {
				err = obj.SetTail(src)
			}
		}
	}
	if err != nil {
		_ = m.vm.Push(src)
	}
	return err
}

// report sets the status line from the outcome of an operation.
func (m *Model) report(ok string, err error) {
	if err != nil {
		m.statusMessage = "error: " + err.Error()
		logger.Warn("operation failed", "error", err)
		return
	}
	m.statusMessage = ok
}

func (m *Model) closeInput() {
	m.inputMode = NormalMode
	m.input.Blur()
	m.input.SetValue("")
}

// dump renders the heap as plain text.
func (m Model) dump() (string, error) {
	var buf bytes.Buffer
	p := printer.New(m.vm.Heap(), m.vm.Roots(), m.vm.Cursor(), &buf, printer.DefaultOptions())
	if err := p.PrintHeap(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeClipboard(s string) error {
	return clipboard.WriteAll(s)
}
