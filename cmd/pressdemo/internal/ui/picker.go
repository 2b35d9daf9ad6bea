package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ScenarioInfo describes a built-in scenario for display.
type ScenarioInfo struct {
	Name        string
	Description string
	Nodes       int
}

// scenarioSelectModel wraps the huh form in Bubble Tea for proper escape handling
type scenarioSelectModel struct {
	form    *huh.Form
	aborted bool
}

func (m scenarioSelectModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m scenarioSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.aborted = true
			return m, tea.Quit
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, tea.Quit
	}

	return m, cmd
}

func (m scenarioSelectModel) View() string {
	if m.form.State == huh.StateCompleted {
		return ""
	}
	return m.form.View()
}

// SelectScenario presents an interactive scenario picker. It returns nil
// when the user cancels.
func SelectScenario(scenarios []ScenarioInfo) (*ScenarioInfo, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to select from")
	}

	nameStyle := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)

	options := make([]huh.Option[int], len(scenarios))
	for i, s := range scenarios {
		label := fmt.Sprintf("%s  %s", nameStyle.Render(s.Name), s.Description)
		options[i] = huh.NewOption(label, i)
	}

	var selectedIndex int

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select Scenario").
				Description("Choose the scene to run (esc to cancel)").
				Options(options...).
				Value(&selectedIndex),
		),
	).WithTheme(customTheme()).WithShowHelp(false)

	model := scenarioSelectModel{form: form}

	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(scenarioSelectModel)
	if m.aborted {
		return nil, nil // User cancelled
	}

	return &scenarios[selectedIndex], nil
}

// customTheme returns a custom huh theme matching our style palette
func customTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorPrimary)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(lipgloss.Color("#F9FAFB"))
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorPrimary)

	return t
}
