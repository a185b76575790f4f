package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/mortality/internal/stats"
)

// handleKey processes key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) { //nolint:cyclop // flat key dispatch
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		m.help.ShowAll = m.helpVisible
		return m, nil

	case key.Matches(msg, m.keys.NextScreen):
		m.screen = (m.screen + 1) % screensCount
		return m, nil

	case key.Matches(msg, m.keys.PrevScreen):
		m.screen = (m.screen + screensCount - 1) % screensCount
		return m, nil

	case key.Matches(msg, m.keys.Counters):
		m.screen = CountersScreen
		return m, nil

	case key.Matches(msg, m.keys.Countries):
		m.screen = CountriesScreen
		return m, nil

	case key.Matches(msg, m.keys.Statistics):
		m.screen = StatisticsScreen
		return m, nil

	case key.Matches(msg, m.keys.About):
		m.screen = AboutScreen
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.screen = CountriesScreen
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Region):
		if m.screen != CountriesScreen {
			return m, nil
		}
		m.regionIdx = (m.regionIdx + 1) % len(stats.Regions())
		m.syncCountries()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.screen == CountriesScreen && m.query != "" {
			m.setQuery("")
		}
		return m, nil
	}

	if m.screen != CountriesScreen {
		return m, nil
	}
	// Remaining keys (arrows, paging) move through the country list.
	var cmd tea.Cmd
	m.countries, cmd = m.countries.Update(msg)
	return m, cmd
}

// handleSearchKey routes keys to the search input while it has focus.
// The list refilters on every keystroke.
func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Accept):
		m.searching = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		m.setQuery("")
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.query {
		m.query = v
		m.syncCountries()
	}
	return m, cmd
}

func (m *Model) setQuery(q string) {
	m.query = q
	m.search.SetValue(q)
	m.syncCountries()
}

// syncCountries rebuilds the list items from the current query and region.
func (m *Model) syncCountries() {
	ranked := stats.Rank(m.query, m.Region())
	items := make([]list.Item, 0, len(ranked))
	for _, rc := range ranked {
		items = append(items, countryItem{RankedCountry: rc})
	}
	m.countries.SetItems(items)
	m.countries.ResetSelected()
}

// resize updates terminal size-dependent layout.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = m.contentWidth()
	m.countries.SetSize(m.contentWidth(), max(height-listOverheadLines, listMinHeight))
}

func (m Model) contentWidth() int {
	if m.width <= 0 || m.width > contentMaxWidth {
		return contentMaxWidth
	}
	return m.width
}
