package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/gckit/heap/verify"
)

var checkNoGC bool

func init() {
	cmd := newCheckCmd()
	cmd.Flags().BoolVar(&checkNoGC, "no-gc", false, "Skip the final collection")
	rootCmd.AddCommand(cmd)
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [ops...]",
		Short: "Run operations, collect and verify heap invariants",
		Long: `The check command runs operations, performs a final collection and
verifies that every root and pair field addresses a live object, that no
forwarding field is left set, and that the live region is compact.

Example:
  gcctl check 1 2 pair dup settail gc
  gcctl check -f script.ops --no-gc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
	return cmd
}

type checkResult struct {
	Valid bool   `json:"valid"`
	Live  int    `json:"live"`
	Error string `json:"error,omitempty"`
}

func runCheck(args []string) error {
	v, err := execOps(args)
	if err != nil {
		return err
	}
	defer v.Close()

	err = verify.AllInvariants(v.Heap(), v.Roots(), v.Cursor())
	if err == nil && !checkNoGC {
		v.Collect()
		err = verify.AllInvariants(v.Heap(), v.Roots(), v.Cursor())
		if err == nil {
			err = verify.Compacted(v.Heap(), v.Roots(), v.Cursor())
		}
	}

	res := checkResult{Valid: err == nil, Live: v.LiveObjectCount()}
	if err != nil {
		res.Error = err.Error()
	}

	if jsonOut {
		if perr := printJSON(res); perr != nil {
			return perr
		}
		return err
	}
	if err != nil {
		return err
	}
	printInfo("OK: %d live objects, all invariants hold\n", res.Live)
	return nil
}
