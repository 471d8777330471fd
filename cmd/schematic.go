package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/almanac/internal/domain/puzzles"
)

// schematicCmd represents the schematic command.
var schematicCmd = newSchematicCmd()

func newSchematicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schematic [input]",
		Short: "Sum the part numbers of an engine schematic",
		Long:  "Schematic scans the grid and sums every number adjacent (including diagonally) to a symbol.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := inputAdapter.Read(inputArg(args))
			if err != nil {
				return err
			}

			cmd.Printf("Sum of part numbers: %d\n", puzzles.SumPartNumbers(input))

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(schematicCmd)
}
