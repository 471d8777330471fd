package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/almanac/internal/domain/puzzles"
)

var calibrationWordsFlag bool

// calibrationCmd represents the calibration command.
var calibrationCmd = newCalibrationCmd()

func newCalibrationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calibration [input]",
		Short: "Sum the calibration values hidden in each line",
		Long: `Calibration combines the first and last digit of every line into a
two-digit value and sums them. With --words, spelled-out digits
(one..nine) are rewritten to numeric form first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := inputAdapter.Read(inputArg(args))
			if err != nil {
				return err
			}

			sum := puzzles.SumCalibrations(input)
			if calibrationWordsFlag {
				sum = puzzles.SumCalibrationsWithWords(input)
			}

			cmd.Printf("Calibration sum: %d\n", sum)

			return nil
		},
	}
	cmd.Flags().BoolVarP(&calibrationWordsFlag, "words", "w", false, "rewrite spelled-out digits before extraction")

	return cmd
}

func init() {
	rootCmd.AddCommand(calibrationCmd)
}
