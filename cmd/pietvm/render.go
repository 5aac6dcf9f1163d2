package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pietvm/internal/loader"
	"github.com/vovakirdan/pietvm/internal/piet"
	"github.com/vovakirdan/pietvm/internal/platform/tui"
)

var (
	flagRenderCodelSize int
	flagRenderBlocks    bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Print the normalized codel grid",
	Long: `Decode a program and print its codel grid as colored terminal cells,
one cell per codel regardless of the source image's codel size.
Useful for checking that codel-size detection and color mapping did
what you expected before running.

Examples:
  pietvm render hello.png
  pietvm render hello.png --codel-size 4 --blocks`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntVar(&flagRenderCodelSize, "codel-size", -1, "Codel size in pixels (0 = auto-detect)")
	renderCmd.Flags().BoolVar(&flagRenderBlocks, "blocks", false, "Also print block statistics")
}

func runRender(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	codelSize := cfg.Interpreter.CodelSize
	if cmd.Flags().Changed("codel-size") {
		codelSize = flagRenderCodelSize
	}

	grid, err := loader.Load(path, loader.Options{
		CodelSize:    codelSize,
		MissingBlack: cfg.Interpreter.MissingBlack(),
	})
	if err != nil {
		return err
	}

	fmt.Println(tui.RenderGrid(grid, piet.C(0, 0), false, 0, 0))
	fmt.Printf("\n%dx%d codels\n", grid.W(), grid.H())

	if flagRenderBlocks {
		blocks := piet.NewBlocks(grid)
		largest := 0
		for _, b := range blocks.All() {
			if b.Size() > largest {
				largest = b.Size()
			}
		}
		fmt.Printf("%d blocks, largest %d codels\n", blocks.Len(), largest)
	}

	return nil
}
