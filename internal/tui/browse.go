// internal/tui/browse.go

// Package tui provides the interactive scenario browser for loaded benchmark
// suites.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/benchview/internal/suite"
	"github.com/mwiater/benchview/internal/units"
	"github.com/mwiater/benchview/internal/util"
)

// item represents a selectable scenario in the browser list.
type item struct {
	title string
	desc  string
}

// Title returns the title of the list item.
func (i item) Title() string { return i.title }

// Description returns the description of the list item.
func (i item) Description() string { return i.desc }

// FilterValue returns the title of the item, used for filtering.
func (i item) FilterValue() string { return i.title }

// model is the scenario browser's Bubble Tea model.
type model struct {
	list          list.Model
	width, height int
}

// NewProgram builds the browser program for a loaded suite.
func NewProgram(su *suite.Suite) *tea.Program {
	return tea.NewProgram(initialModel(su), tea.WithAltScreen(), tea.WithMouseCellMotion())
}

// initialModel creates the browser model with one list entry per scenario.
func initialModel(su *suite.Suite) *model {
	l := list.New(buildItems(su), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Benchmark Scenarios"
	l.Styles.Title = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	return &model{list: l}
}

// buildItems formats one list item per scenario. Scenarios sharing an input
// share display units, matching the generated report pages.
func buildItems(su *suite.Suite) []list.Item {
	meansByInput := make(map[string][]float64)
	ipsByInput := make(map[string][]float64)
	for _, sc := range su.Scenarios {
		meansByInput[sc.Input] = append(meansByInput[sc.Input], sc.RunTimeStats.Average)
		ipsByInput[sc.Input] = append(ipsByInput[sc.Input], sc.RunTimeStats.IPS)
	}
	durationByInput := make(map[string]units.Unit, len(meansByInput))
	countByInput := make(map[string]units.Unit, len(ipsByInput))
	for input, means := range meansByInput {
		durationByInput[input] = units.BestFitDuration(means)
		countByInput[input] = units.BestFitCount(ipsByInput[input])
	}

	items := make([]list.Item, 0, len(su.Scenarios))
	for _, sc := range su.Scenarios {
		desc := fmt.Sprintf("avg %s, ips %s, %s",
			units.Format(sc.RunTimeStats.Average, durationByInput[sc.Input]),
			units.Format(sc.RunTimeStats.IPS, countByInput[sc.Input]),
			units.FormatPercent(sc.RunTimeStats.StdDevRatio))
		items = append(items, item{title: sc.Label(), desc: desc})
	}
	return items
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd { return nil }

// Update handles key presses and window resizes.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "esc", "ctrl+c":
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(util.Max(msg.Width-2, 0), util.Max(msg.Height-2, 0))
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the scenario list.
func (m *model) View() string {
	return m.list.View()
}
