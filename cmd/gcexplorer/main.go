package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/gckit/cmd/gcexplorer/logger"
	"github.com/joshuapare/gckit/vm"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	opts := vm.DefaultOptions()
	debugMode := false

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--debug", "-d":
			debugMode = true
		case "--help", "-h":
			printHelp()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("gcexplorer %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
			os.Exit(0)
		case "--heap", "--stack":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "Error: %s needs a value\n", arg)
				os.Exit(1)
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n <= 0 {
				fmt.Fprintf(os.Stderr, "Error: invalid %s value %q\n", arg, args[i])
				os.Exit(1)
			}
			if arg == "--heap" {
				opts.HeapSlots = n
			} else {
				opts.StackSlots = n
			}
		default:
			printUsage()
			os.Exit(1)
		}
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}
	opts.Logger = logger.L

	v, err := vm.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting gcexplorer", "heap_slots", opts.HeapSlots, "stack_slots", opts.StackSlots)

	p := tea.NewProgram(NewModel(v), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	if model, ok := finalModel.(Model); ok {
		if err := model.Close(); err != nil {
			logger.Warn("error closing vm", "error", err)
		}
	}
	logger.Info("gcexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: gcexplorer [--heap N] [--stack N] [--debug]\n")
	fmt.Fprintf(os.Stderr, "Try 'gcexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("gcexplorer - Interactive stepper for the mark-compact collector")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  gcexplorer [options]")
	fmt.Println()
	fmt.Println("  Push ints and pairs, pop roots, rewire pair fields and run")
	fmt.Println("  collections while watching the heap compact.")
	fmt.Println()
	fmt.Println("  Keys:")
	fmt.Println("    i           Push an int (prompts for the value)")
	fmt.Println("    n           Push nil")
	fmt.Println("    p           Pair the top two roots")
	fmt.Println("    x           Pop")
	fmt.Println("    d           Duplicate the top root")
	fmt.Println("    h / t       Pop a ref into the head / tail of the pair on top")
	fmt.Println("    c           Collect")
	fmt.Println("    y           Copy a heap dump to the clipboard")
	fmt.Println("    ↑/k, ↓/j    Move between slots")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  --heap N       Heap capacity in slots (default 256)")
	fmt.Println("  --stack N      Stack capacity (default 256)")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.gcexplorer/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("For scripted runs, use the 'gcctl' command instead.")
}
