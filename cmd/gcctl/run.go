package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/gckit/vm"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [ops...]",
		Short: "Run mutator operations and show collector statistics",
		Long: `The run command executes operations against a fresh VM and prints
allocation and collection statistics.

Example:
  gcctl run 1 2 pair 3 pair gc
  gcctl run --heap 4 1 pop 2 pop 3 pop 4 pop 5
  gcctl run -f script.ops --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args)
		},
	}
	return cmd
}

func runRun(args []string) error {
	v, err := execOps(args)
	if err != nil {
		return err
	}
	defer v.Close()

	stats := v.Stats()
	if jsonOut {
		return printJSON(stats)
	}
	printStats(stats)
	return nil
}

func printStats(s vm.Stats) {
	printInfo("\nVM Statistics\n")
	printInfo("%s\n", strings.Repeat("=", 40))
	printInfo("  Live objects:  %d / %d slots\n", s.Live, s.HeapSlots)
	printInfo("  Free slots:    %d\n", s.FreeSlots)
	printInfo("  Stack depth:   %d\n", s.StackDepth)
	printInfo("  Allocations:   %d (%d failed)\n", s.Allocs, s.FailedAllocs)
	printInfo("  Collections:   %d (%d forced by exhaustion)\n", s.Collections, s.ForcedCycles)
	printInfo("  Reclaimed:     %d objects\n", s.Reclaimed)
	if s.Collections > 0 {
		c := s.LastCycle
		printInfo("  Last cycle:    #%d %d -> %d live, %d reclaimed in %s\n",
			c.Seq, c.Before, c.After, c.Reclaimed, c.Duration)
	}
}
