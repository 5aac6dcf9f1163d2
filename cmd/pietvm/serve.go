package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pietvm/internal/loader"
	"github.com/vovakirdan/pietvm/internal/platform/tui"
)

var (
	flagSSHAddr        string
	flagHostKey        string
	flagIdleTimeout    int
	flagServeCodelSize int
	flagServeInput     string
	flagServeMaxSteps  int
)

var serveCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Serve the step debugger over SSH",
	Long: `Start an SSH server that opens the step debugger on the given
program for every connection. The program file is reloaded per
session, so edits show up on reconnect.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pietvm/host_key

Examples:
  pietvm serve hello.png                   # Listen on :23235
  pietvm serve hello.png --ssh :2222       # Listen on port 2222
  pietvm serve adder.yaml --input nums.txt

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagServeCodelSize, "codel-size", -1, "Codel size in pixels (0 = auto-detect)")
	serveCmd.Flags().StringVar(&flagServeInput, "input", "", "Read program input from a file")
	serveCmd.Flags().IntVar(&flagServeMaxSteps, "max-steps", -1, "Maximum interpreter steps per session (0 = unlimited)")
}

func runServe(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	codelSize := cfg.Interpreter.CodelSize
	if cmd.Flags().Changed("codel-size") {
		codelSize = flagServeCodelSize
	}
	maxSteps := cfg.Interpreter.MaxSteps
	if cmd.Flags().Changed("max-steps") {
		maxSteps = flagServeMaxSteps
	}

	var input []byte
	if flagServeInput != "" {
		input, err = os.ReadFile(flagServeInput)
		if err != nil {
			return fmt.Errorf("reading input %s: %w", flagServeInput, err)
		}
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.ProgramPath = path
	serverCfg.LoadOptions = loader.Options{
		CodelSize:    codelSize,
		MissingBlack: cfg.Interpreter.MissingBlack(),
	}
	serverCfg.Input = input
	serverCfg.MaxSteps = maxSteps
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	// Validate the program before accepting connections.
	if _, err := loader.Load(path, serverCfg.LoadOptions); err != nil {
		return err
	}

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Serving %s on %s\n", path, serverCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
