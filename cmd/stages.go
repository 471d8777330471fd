package cmd

import (
	"github.com/spf13/cobra"
)

// stagesCmd represents the stages command.
var stagesCmd = newStagesCmd()

func newStagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stages [input]",
		Short: "List the mapping stages of an almanac",
		Long:  "List each mapping stage of the almanac with its category labels and range count, in document order.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			almanac, err := loadAlmanac(inputArg(args))
			if err != nil {
				return err
			}

			return ui.DisplayStages(almanac)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(stagesCmd)
}
