package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/gckit/heap/printer"
)

var (
	dumpGC         bool
	dumpMaxSlots   int
	dumpForwarding bool
	dumpNoRoots    bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpGC, "gc", false, "Collect before dumping")
	cmd.Flags().IntVar(&dumpMaxSlots, "max-slots", printer.DefaultMaxSlots, "Limit listed slots (0 = all)")
	cmd.Flags().BoolVar(&dumpForwarding, "forwarding", false, "Show forwarding fields")
	cmd.Flags().BoolVar(&dumpNoRoots, "no-roots", false, "Omit the root set")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [ops...]",
		Short: "Run operations and print the heap",
		Long: `The dump command runs operations and prints every slot below the
allocation cursor followed by the root stack.

Example:
  gcctl dump 1 2 pair 3
  gcctl dump 1 2 pair 3 pop --gc
  gcctl dump -f script.ops --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	v, err := execOps(args)
	if err != nil {
		return err
	}
	defer v.Close()

	if dumpGC {
		v.Collect()
	}

	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	opts.MaxSlots = dumpMaxSlots
	opts.ShowForwarding = dumpForwarding
	opts.ShowRoots = !dumpNoRoots

	if quiet {
		return nil
	}
	return printer.New(v.Heap(), v.Roots(), v.Cursor(), os.Stdout, opts).PrintHeap()
}
