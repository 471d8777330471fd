package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/almanac/internal/domain"
)

var solveParallelFlag int

// solveCmd represents the solve command.
var solveCmd = newSolveCmd()

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Resolve every seed and report the lowest location",
		Long: `Solve parses the almanac, folds every seed through each mapping
stage in document order, and reports the lowest resulting location.

Seeds are independent, so resolution fans out over --parallel workers.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSolve(inputArg(args), solveParallelFlag)
		},
	}
	cmd.Flags().IntVarP(&solveParallelFlag, "parallel", "p", 1, "number of parallel workers for seed resolution")

	return cmd
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(path string, threads int) error {
	almanac, err := loadAlmanac(path)
	if err != nil {
		return err
	}

	if err := ui.Start(); err != nil {
		return err
	}
	defer ui.Close()

	resolver := domain.NewResolver(threads)

	ui.DisplayConcurrencyInfo(len(almanac.Seeds), len(almanac.Tables), threads)

	locations := resolver.ResolveAll(almanac, ui.DisplaySeedResolved)

	min, err := domain.Min(locations)
	if err != nil {
		return err
	}

	return ui.DisplaySolution(almanac.Seeds, locations, min)
}
