package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/almanac/internal/domain/puzzles"
)

var cascadeFlag bool

// scratchcardsCmd represents the scratchcards command.
var scratchcardsCmd = newScratchcardsCmd()

func newScratchcardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scratchcards [input]",
		Short: "Score scratchcards against their winning numbers",
		Long: `Scratchcards parses one card per line and reports the total points
(doubling per match). With --cascade, each card instead wins copies of
the following cards and the total card count is reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := inputAdapter.Read(inputArg(args))
			if err != nil {
				return err
			}

			cards, err := puzzles.ParseCards(input)
			if err != nil {
				return err
			}

			if cascadeFlag {
				cmd.Printf("Total scratchcards: %d\n", puzzles.CountWonCards(cards))

				return nil
			}

			cmd.Printf("Total points: %d\n", puzzles.TotalPoints(cards))

			return nil
		},
	}
	cmd.Flags().BoolVarP(&cascadeFlag, "cascade", "c", false, "count cascading card copies instead of points")

	return cmd
}

func init() {
	rootCmd.AddCommand(scratchcardsCmd)
}
