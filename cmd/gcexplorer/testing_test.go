package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/gckit/vm"
)

// TestHelper drives a Model with synthetic key presses.
type TestHelper struct {
	t     *testing.T
	model Model
}

// NewTestHelper creates a helper around a fresh VM closed at test end.
func NewTestHelper(t *testing.T, heapSlots, stackSlots int) *TestHelper {
	t.Helper()
	v, err := vm.New(vm.Options{HeapSlots: heapSlots, StackSlots: stackSlots})
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close() })

	m := NewModel(v)
	m.copyFn = func(string) error { return nil }
	return &TestHelper{t: t, model: m}
}

// SendKey simulates a special key press
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	updated, _ := h.model.Update(tea.KeyMsg{Type: keyType})
	h.model = updated.(Model)
	return h
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	updated, _ := h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	h.model = updated.(Model)
	return h
}

// Type sends each rune of s.
func (h *TestHelper) Type(s string) *TestHelper {
	for _, r := range s {
		h.SendKeyRune(r)
	}
	return h
}

// PushInt opens the prompt, types n and confirms.
func (h *TestHelper) PushInt(n string) *TestHelper {
	return h.SendKeyRune('i').Type(n).SendKey(tea.KeyEnter)
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	updated, _ := h.model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	h.model = updated.(Model)
	return h
}
