package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pietvm/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent run history",
	Long: `Display the most recent program runs recorded in the history
database: program, outcome, step count and duration.

Examples:
  pietvm runs
  pietvm runs --limit 25
  pietvm runs --clear`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs")
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Storage.DB == "" {
		return fmt.Errorf("run history is disabled (no database configured)")
	}

	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pietvm run <file>' to record the first one.")
		return nil
	}

	// Calculate column width
	maxProgLen := len("Program")
	for _, r := range runs {
		if len(r.Program) > maxProgLen {
			maxProgLen = len(r.Program)
		}
	}

	fmt.Fprintf(os.Stdout, "  %-*s  %-8s  %-10s  %s\n", maxProgLen, "Program", "Steps", "Duration", "Outcome")
	fmt.Fprintf(os.Stdout, "  %-*s  %-8s  %-10s  %s\n", maxProgLen, "-------", "-----", "--------", "-------")
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "  %-*s  %-8d  %-10s  %s\n",
			maxProgLen, r.Program, r.Steps, r.Duration.String(), r.Outcome)
	}

	return nil
}
