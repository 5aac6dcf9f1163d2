package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pietvm/internal/loader"
	"github.com/vovakirdan/pietvm/internal/piet"
	"github.com/vovakirdan/pietvm/internal/storage"
	"github.com/vovakirdan/pietvm/internal/tracelog"
)

var (
	flagCodelSize    int
	flagMaxSteps     int
	flagTrace        bool
	flagMissingBlack bool
	flagInputFile    string
	flagNoSave       bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Piet program to completion",
	Long: `Load a Piet program and run it until it halts.

The program reads from stdin (or --input) and writes to stdout.
A program halts when 8 consecutive movement attempts are blocked,
when it deadlocks inside a white region, when --max-steps is
exceeded, or on Ctrl+C.

Examples:
  pietvm run hello.png
  pietvm run hello.png --codel-size 4
  pietvm run adder.yaml --input nums.txt
  pietvm run loop.png --max-steps 100000 --trace`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagCodelSize, "codel-size", -1, "Codel size in pixels (0 = auto-detect)")
	runCmd.Flags().IntVar(&flagMaxSteps, "max-steps", -1, "Maximum interpreter steps (0 = unlimited)")
	runCmd.Flags().BoolVar(&flagTrace, "trace", false, "Log every interpreter step")
	runCmd.Flags().BoolVar(&flagMissingBlack, "missing-color-black", false, "Treat unrecognized colors as black instead of white")
	runCmd.Flags().StringVar(&flagInputFile, "input", "", "Read program input from a file instead of stdin")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in the history database")
}

func runRun(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	codelSize := cfg.Interpreter.CodelSize
	if cmd.Flags().Changed("codel-size") {
		codelSize = flagCodelSize
	}
	maxSteps := cfg.Interpreter.MaxSteps
	if cmd.Flags().Changed("max-steps") {
		maxSteps = flagMaxSteps
	}
	missingBlack := cfg.Interpreter.MissingBlack()
	if flagMissingBlack {
		missingBlack = true
	}
	traceEnabled := cfg.Trace.Enabled || flagTrace

	grid, err := loader.Load(path, loader.Options{
		CodelSize:    codelSize,
		MissingBlack: missingBlack,
	})
	if err != nil {
		return err
	}

	var input io.Reader = os.Stdin
	if flagInputFile != "" {
		f, err := os.Open(flagInputFile)
		if err != nil {
			return fmt.Errorf("opening input %s: %w", flagInputFile, err)
		}
		defer f.Close()
		input = f
	}

	var trace piet.TraceFunc
	if traceEnabled {
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pietvm"})
		logger.SetLevel(log.DebugLevel)
		level := log.InfoLevel
		if cfg.Trace.Level == "debug" {
			level = log.DebugLevel
		}
		trace = tracelog.Sink(logger, level)
	}

	// Capture output for the run history while streaming it through.
	var captured capturedWriter
	captured.w = os.Stdout

	interp, err := piet.New(grid, piet.Options{
		Input:    piet.NewReaderInput(input),
		Output:   piet.NewWriterOutput(&captured),
		Trace:    trace,
		MaxSteps: maxSteps,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	outcome := interp.Run(ctx)
	elapsed := time.Since(start)

	fmt.Fprintf(os.Stderr, "\n%s after %d steps (%s)\n", outcome, interp.Steps(), elapsed.Round(time.Millisecond))

	if !flagNoSave && cfg.Storage.DB != "" {
		saveRun(cfg.Storage.DB, storage.RunRecord{
			Program:  path,
			Outcome:  outcome.String(),
			Steps:    interp.Steps(),
			Output:   captured.buf.String(),
			Duration: elapsed,
		})
	}

	return nil
}

// capturedWriter tees program output into a bounded buffer for the
// run history.
type capturedWriter struct {
	w   io.Writer
	buf bytes.Buffer
}

func (c *capturedWriter) Write(p []byte) (int, error) {
	if c.buf.Len() < maxCapturedOutput {
		c.buf.Write(p[:min(len(p), maxCapturedOutput-c.buf.Len())])
	}
	return c.w.Write(p)
}

const maxCapturedOutput = 4096

// saveRun records the run best-effort; history must never fail a run.
func saveRun(dbPath string, rec storage.RunRecord) {
	store, err := storage.Open(dbPath)
	if err != nil {
		log.Warn("could not open run-history database", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(rec); err != nil {
		log.Warn("could not save run", "error", err)
	}
}
