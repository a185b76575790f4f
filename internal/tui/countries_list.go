package tui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/mortality/internal/stats"
)

// countryItem is the list item backing a ranked country row.
type countryItem struct {
	stats.RankedCountry
}

// List item interface methods.
func (it countryItem) Title() string       { return it.Country.Name }
func (it countryItem) Description() string { return it.Country.Region }
func (it countryItem) FilterValue() string { return it.Country.Name }

// countriesDelegate renders countryItem rows with the rate and annual
// estimate right-justified.
type countriesDelegate struct{}

func (d countriesDelegate) Height() int                             { return 1 }
func (d countriesDelegate) Spacing() int                            { return 0 }
func (d countriesDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d countriesDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(countryItem)
	if !ok {
		return
	}
	selected := index == m.Index()
	leftPrefix := "  "
	lineStyle := lipgloss.NewStyle()
	if selected {
		leftPrefix = "> "
		lineStyle = lineStyle.Foreground(primaryColor).Bold(true)
	}

	c := it.Country
	left := fmt.Sprintf("%s#%-3d %s %s", leftPrefix, it.Rank, c.Flag, c.Name)
	right := rateStyle.Render(strconv.FormatFloat(c.DeathRate, 'f', -1, 64)+"/1k") +
		mutedStyle.Render(fmt.Sprintf("  %sM pop  ~%s deaths/yr",
			strconv.FormatFloat(c.Population, 'f', -1, 64), it.AnnualDisplay))

	padding := m.Width() - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	_, _ = fmt.Fprint(w, lineStyle.Render(left)+spaces(padding)+right)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(n).Render("")
}
