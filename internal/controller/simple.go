package controller

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/almanac/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
// DisplaySeedResolved is called from resolver workers, so writes to
// the shared output are serialized by mu.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayStages prints one row per stage with its range count.
func (s *SimpleUI) DisplayStages(a m.Almanac) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"From", "To", "Ranges"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
	})

	ranges := 0

	for _, stage := range a.Tables {
		table.Append([]string{stage.From, stage.To, fmt.Sprintf("%d", len(stage.Mappings))})
		ranges += len(stage.Mappings)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Stages %d", len(a.Tables)),
		fmt.Sprintf("Seeds %d", len(a.Seeds)),
		fmt.Sprintf("%d", ranges),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayConcurrencyInfo shows the size of the run before it starts.
func (s *SimpleUI) DisplayConcurrencyInfo(seeds, stages, threads int) {
	s.printf("Resolving %d seeds through %d stages with %d worker(s)\n", seeds, stages, threads)
}

// DisplaySeedResolved prints one completed seed.
func (s *SimpleUI) DisplaySeedResolved(seed, location m.Number) {
	s.printf("seed %d -> location %d\n", seed, location)
}

// DisplaySolution prints the seed/location pairs and the minimum.
func (s *SimpleUI) DisplaySolution(seeds, locations []m.Number, min m.Number) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Seed", "Location"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for i, seed := range seeds {
		table.Append([]string{
			fmt.Sprintf("%d", seed),
			fmt.Sprintf("%d", locations[i]),
		})
	}

	table.SetFooter([]string{"Lowest", fmt.Sprintf("%d", min)})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
