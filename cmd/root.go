// Package cmd provides the root command and CLI setup for almanac.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/almanac/internal/adapter"
	"github.com/mouse-blink/almanac/internal/controller"
	"github.com/mouse-blink/almanac/internal/domain"
	m "github.com/mouse-blink/almanac/internal/model"
)

var inputAdapter adapter.InputAdapter
var ui controller.UI

func init() {
	inputAdapter = adapter.NewLocalInputAdapter()
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
}

var parallelFlag int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "almanac [input]",
		Short: "Garden almanac pipeline solver",
		Long: `Almanac parses a plaintext garden almanac - a seed list followed by
named category-to-category mapping tables - and folds every seed
through each stage in document order, reporting the lowest final
location.

Run without a subcommand it solves the almanac directly. The sibling
daily puzzles from the same collection are available as subcommands.

Input is read from the given file, or from stdin when no file is
given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSolve(inputArg(args), parallelFlag)
		},
	}
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers for seed resolution")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}

// loadAlmanac reads and parses the input document for the pipeline
// commands.
func loadAlmanac(path string) (m.Almanac, error) {
	text, err := inputAdapter.Read(path)
	if err != nil {
		return m.Almanac{}, err
	}

	return domain.ParseAlmanac(text)
}
