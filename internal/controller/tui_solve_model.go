package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/almanac/internal/model"
)

// recentResults caps how many per-seed lines stay on screen.
const recentResults = 8

type solveStartedMsg struct {
	seeds   int
	stages  int
	threads int
}

type seedResolvedMsg struct {
	seed     m.Number
	location m.Number
}

type solveDoneMsg struct {
	min   m.Number
	count int
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true)

	seedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Width(14).
			Align(lipgloss.Right)

	locationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5"))

	minimumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("2")).
			Bold(true).
			Padding(0, 1)
)

// solveModel renders the progress of a solve run: a bar tracking
// resolved seeds, the most recent results, and the final minimum.
type solveModel struct {
	width    int
	total    int
	stages   int
	threads  int
	resolved int
	recent   []seedResolvedMsg
	min      m.Number
	done     bool
	bar      progress.Model
}

func newSolveModel() solveModel {
	return solveModel{
		bar: progress.New(progress.WithDefaultGradient()),
	}
}

func (mod solveModel) Init() tea.Cmd {
	return nil
}

func (mod solveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		mod.width = msg.Width
		mod.bar.Width = msg.Width - 4

		return mod, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return mod, tea.Quit
		}

		return mod, nil

	case solveStartedMsg:
		mod.total = msg.seeds
		mod.stages = msg.stages
		mod.threads = msg.threads

		return mod, nil

	case seedResolvedMsg:
		mod.resolved++

		mod.recent = append(mod.recent, msg)
		if len(mod.recent) > recentResults {
			mod.recent = mod.recent[len(mod.recent)-recentResults:]
		}

		return mod, nil

	case solveDoneMsg:
		mod.done = true
		mod.min = msg.min

		return mod, tea.Quit
	}

	return mod, nil
}

func (mod solveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf(
		"Resolving %d seeds through %d stages (%d workers)",
		mod.total, mod.stages, mod.threads,
	)))
	b.WriteString("\n\n")

	b.WriteString(mod.bar.ViewAs(mod.percent()))
	b.WriteString(fmt.Sprintf("  %d/%d\n\n", mod.resolved, mod.total))

	for _, r := range mod.recent {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			seedStyle.Render(fmt.Sprintf("%d", r.seed)),
			locationStyle.Render(fmt.Sprintf("-> %d", r.location)),
		))
	}

	if mod.done {
		b.WriteString("\n")
		b.WriteString(minimumStyle.Render(fmt.Sprintf("Lowest location: %d", mod.min)))
		b.WriteString("\n")
	}

	return b.String()
}

func (mod solveModel) percent() float64 {
	if mod.total == 0 {
		return 0
	}

	return float64(mod.resolved) / float64(mod.total)
}
