package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/almanac/internal/domain/puzzles"
)

var cubesBag = puzzles.CubeSet{}

// cubesCmd represents the cubes command.
var cubesCmd = newCubesCmd()

func newCubesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cubes [input]",
		Short: "Sum the IDs of cube games viable with the bag",
		Long: `Cubes parses one game per line and sums the IDs of games whose draws
all fit inside the bag given by --red, --green and --blue.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := inputAdapter.Read(inputArg(args))
			if err != nil {
				return err
			}

			sum, err := puzzles.SumViableGameIDs(input, cubesBag)
			if err != nil {
				return err
			}

			cmd.Printf("Sum of viable game IDs: %d\n", sum)

			return nil
		},
	}
	cmd.Flags().IntVar(&cubesBag.Red, "red", 12, "red cubes in the bag")
	cmd.Flags().IntVar(&cubesBag.Green, "green", 13, "green cubes in the bag")
	cmd.Flags().IntVar(&cubesBag.Blue, "blue", 14, "blue cubes in the bag")

	return cmd
}

func init() {
	rootCmd.AddCommand(cubesCmd)
}
