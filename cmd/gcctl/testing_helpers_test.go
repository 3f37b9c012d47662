package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/joshuapare/gckit/heap/printer"
	"github.com/joshuapare/gckit/internal/format"
)

// resetFlags restores every global flag to its default.
func resetFlags(t *testing.T) {
	t.Helper()
	verbose, quiet, jsonOut = false, false, false
	heapSlots = format.DefaultHeapSlots
	stackSlots = format.DefaultStackSlots
	scriptPath = ""
	checkNoGC = false
	dumpGC, dumpForwarding, dumpNoRoots = false, false, false
	dumpMaxSlots = printer.DefaultMaxSlots
	t.Cleanup(func() {
		verbose, quiet, jsonOut = false, false, false
		scriptPath = ""
	})
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}
