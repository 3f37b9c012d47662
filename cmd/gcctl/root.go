package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/gckit/internal/format"
	"github.com/joshuapare/gckit/vm"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	heapSlots  int
	stackSlots int
	scriptPath string
)

var rootCmd = &cobra.Command{
	Use:   "gcctl",
	Short: "Drive and inspect the mark-compact collector",
	Long: `gcctl runs a sequence of mutator operations against a fresh VM and
reports what the collector did. Operations are given as arguments or read
from a script file:

  <int>     allocate an int and push it
  nil       push the null reference
  pair      pop tail and head, push a new pair
  pop       drop the top of the stack
  dup       push the top of the stack again
  sethead   pop a ref and store it in the head of the pair now on top
  settail   pop a ref and store it in the tail of the pair now on top
  gc        run a full collection`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logs")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		IntVar(&heapSlots, "heap", format.DefaultHeapSlots, "Heap capacity in object slots")
	rootCmd.PersistentFlags().
		IntVar(&stackSlots, "stack", format.DefaultStackSlots, "Root stack capacity")
	rootCmd.PersistentFlags().
		StringVarP(&scriptPath, "file", "f", "", "Read operations from a script file")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// newLogger returns a text logger on stderr. Collector cycles are logged at
// debug level, so they only show with --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newVM creates a VM sized by the global flags.
func newVM() (*vm.VM, error) {
	return vm.New(vm.Options{
		HeapSlots:  heapSlots,
		StackSlots: stackSlots,
		Logger:     newLogger(),
	})
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
