package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/almanac/internal/domain"
	m "github.com/mouse-blink/almanac/internal/model"
)

// traceCmd represents the trace command.
var traceCmd = newTraceCmd()

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace [input]",
		Short: "Show every intermediate value of each seed's resolution",
		Long: `Trace folds each seed through the stages one at a time and prints the
value after every stage, labelled with the stage's destination
category.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			almanac, err := loadAlmanac(inputArg(args))
			if err != nil {
				return err
			}

			for _, seed := range almanac.Seeds {
				trace := domain.TraceSeed(almanac, seed)

				var b strings.Builder
				b.WriteString("seed ")
				b.WriteString(formatNumber(trace[0]))

				for i, table := range almanac.Tables {
					b.WriteString(" -> ")
					b.WriteString(table.To)
					b.WriteString(" ")
					b.WriteString(formatNumber(trace[i+1]))
				}

				cmd.Println(b.String())
			}

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

func formatNumber(n m.Number) string {
	return strconv.FormatUint(uint64(n), 10)
}
