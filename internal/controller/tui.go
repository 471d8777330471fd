package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/almanac/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the interactive view in the background.
func (t *TUI) Start() error {
	t.program = tea.NewProgram(newSolveModel(), tea.WithOutput(t.output))
	t.done = make(chan error, 1)

	go func() {
		_, err := t.program.Run()
		t.done <- err
	}()

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {
	if t.program != nil {
		t.program.Quit()
	}
}

// DisplayStages renders the stage listing without interactivity; the
// stages command has no progress to animate.
func (t *TUI) DisplayStages(a m.Almanac) error {
	for _, stage := range a.Tables {
		_, _ = fmt.Fprintf(t.output, "%s -> %s (%d ranges)\n", stage.From, stage.To, len(stage.Mappings))
	}

	_, _ = fmt.Fprintf(t.output, "%d stages, %d seeds\n", len(a.Tables), len(a.Seeds))

	return nil
}

// DisplayConcurrencyInfo seeds the model with the size of the run.
func (t *TUI) DisplayConcurrencyInfo(seeds, stages, threads int) {
	t.send(solveStartedMsg{seeds: seeds, stages: stages, threads: threads})
}

// DisplaySeedResolved advances the progress bar by one seed.
func (t *TUI) DisplaySeedResolved(seed, location m.Number) {
	t.send(seedResolvedMsg{seed: seed, location: location})
}

// DisplaySolution shows the final minimum and waits for the view to
// shut down.
func (t *TUI) DisplaySolution(_, locations []m.Number, min m.Number) error {
	t.send(solveDoneMsg{min: min, count: len(locations)})

	if t.done == nil {
		return nil
	}

	if err := <-t.done; err != nil {
		return fmt.Errorf("interactive view: %w", err)
	}

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	if t.program != nil {
		t.program.Send(msg)
	}
}
