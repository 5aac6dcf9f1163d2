// pietvm interprets programs written in the Piet graphical programming
// language.
//
// Usage:
//
//	pietvm run <file>        - Run a program to completion
//	pietvm debug <file>      - Step through a program interactively
//	pietvm render <file>     - Print the normalized codel grid
//	pietvm runs              - Show recent run history
//	pietvm serve <file>      - Serve the debugger over SSH
//
// Global flags:
//
//	--config <path>  - Runtime config YAML (default: ~/.pietvm/pietvm.yaml)
//	--db <path>      - Run-history database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pietvm/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pietvm",
	Short: "pietvm - interpret Piet programs in your terminal",
	Long: `pietvm interprets programs written in Piet, the graphical programming
language whose source code is an image: execution wanders across blocks
of colored codels, and color transitions between blocks are the
instructions.

Programs can be images (.png, .gif, .jpg) or text grids (.yaml).

Available commands:
  run      - Run a program to completion
  debug    - Interactive step-through debugger
  render   - Print the normalized codel grid
  runs     - Show recent run history
  serve    - Serve the debugger over SSH

Examples:
  pietvm run hello.png --codel-size 4
  pietvm run counter.yaml --trace
  pietvm debug hello.png
  pietvm serve hello.png --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to runtime config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run-history database")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the runtime config and applies global overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DB = flagDBPath
	}
	return cfg, nil
}
