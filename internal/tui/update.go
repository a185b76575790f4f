package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(x.Width, x.Height)
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(x)
		}
		return m.handleKey(x)

	case tickMsg:
		m.now = m.clock()
		return m, m.tick()
	}

	return m, nil
}
