package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pietvm/internal/loader"
	"github.com/vovakirdan/pietvm/internal/platform/tui"
)

var (
	flagDebugCodelSize int
	flagDebugMaxSteps  int
	flagDebugInput     string
	flagDebugSpeed     int
)

var debugCmd = &cobra.Command{
	Use:   "debug <file>",
	Short: "Step through a Piet program interactively",
	Long: `Open a program in the interactive debugger: the codel grid with the
current position, the direction pointer and codel chooser, the operand
stack, and the program output, advancing one step at a time.

Controls:
  Space/n    - Execute one step
  g/Enter    - Run / pause
  +/-        - Change run speed
  r          - Reset the program
  q/Ctrl+C   - Quit

Program input cannot come from stdin (the debugger owns the terminal);
pass it with --input.

Examples:
  pietvm debug hello.png
  pietvm debug adder.yaml --input nums.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runDebug,
}

func init() {
	debugCmd.Flags().IntVar(&flagDebugCodelSize, "codel-size", -1, "Codel size in pixels (0 = auto-detect)")
	debugCmd.Flags().IntVar(&flagDebugMaxSteps, "max-steps", -1, "Maximum interpreter steps (0 = unlimited)")
	debugCmd.Flags().StringVar(&flagDebugInput, "input", "", "Read program input from a file")
	debugCmd.Flags().IntVar(&flagDebugSpeed, "speed", 0, "Auto-run speed in steps per second")
}

func runDebug(cmd *cobra.Command, args []string) error {
	path := args[0]

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("debug needs an interactive terminal")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	codelSize := cfg.Interpreter.CodelSize
	if cmd.Flags().Changed("codel-size") {
		codelSize = flagDebugCodelSize
	}
	maxSteps := cfg.Interpreter.MaxSteps
	if cmd.Flags().Changed("max-steps") {
		maxSteps = flagDebugMaxSteps
	}

	grid, err := loader.Load(path, loader.Options{
		CodelSize:    codelSize,
		MissingBlack: cfg.Interpreter.MissingBlack(),
	})
	if err != nil {
		return err
	}

	var input []byte
	if flagDebugInput != "" {
		input, err = os.ReadFile(flagDebugInput)
		if err != nil {
			return fmt.Errorf("reading input %s: %w", flagDebugInput, err)
		}
	}

	return tui.Run(tui.DebugConfig{
		Program:     path,
		Grid:        grid,
		Input:       input,
		MaxSteps:    maxSteps,
		StepsPerSec: flagDebugSpeed,
	})
}
