package controller

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/almanac/internal/model"
)

func almanacFixture() m.Almanac {
	return m.Almanac{
		Seeds: []m.Number{79, 14},
		Tables: []m.Table{
			{
				From: "seed",
				To:   "soil",
				Mappings: []m.RangeMapping{
					m.NewRangeMapping(50, 98, 2),
					m.NewRangeMapping(52, 50, 48),
				},
			},
			{From: "soil", To: "fertilizer"},
		},
	}
}

func TestSimpleUI_DisplayStages_PrintsTable(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	if err := ui.DisplayStages(almanacFixture()); err != nil {
		t.Fatalf("DisplayStages() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"seed",
		"soil",
		"fertilizer",
		"STAGES 2",
		"SEEDS 2",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplaySolution_PrintsMinimum(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	seeds := []m.Number{79, 14}
	locations := []m.Number{82, 43}

	if err := ui.DisplaySolution(seeds, locations, 43); err != nil {
		t.Fatalf("DisplaySolution() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{"79", "82", "14", "43", "LOWEST"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplaySeedResolved(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)
	ui.DisplaySeedResolved(79, 82)

	if got := buf.String(); !strings.Contains(got, "seed 79 -> location 82") {
		t.Fatalf("output = %q, want resolved seed line", got)
	}
}

func TestSimpleUI_DisplaySeedResolved_ConcurrentWorkers(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	const workers = 16

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		go func() {
			defer wg.Done()

			ui.DisplaySeedResolved(m.Number(i), m.Number(i)+100)
		}()
	}

	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != workers {
		t.Fatalf("got %d output lines, want %d\noutput:\n%s", len(lines), workers, buf.String())
	}

	for _, line := range lines {
		if !strings.HasPrefix(line, "seed ") || !strings.Contains(line, "-> location ") {
			t.Fatalf("interleaved output line %q", line)
		}
	}
}

func TestSimpleUI_StartClose(t *testing.T) {
	ui := NewSimpleUI(&cobra.Command{})

	if err := ui.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.Close()
}
