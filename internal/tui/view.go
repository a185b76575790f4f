package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/mortality/internal/stats"
)

//nolint:gochecknoglobals // Shared palette and styles.
var (
	primaryColor = lipgloss.Color("69")
	dangerColor  = lipgloss.Color("196")
	birthColor   = lipgloss.Color("46")
	warningColor = lipgloss.Color("208")
	mutedColor   = lipgloss.Color("241")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(dangerColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	rateStyle    = lipgloss.NewStyle().Foreground(dangerColor).Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	noteStyle    = lipgloss.NewStyle().Foreground(warningColor)
	tabStyle     = lipgloss.NewStyle().Padding(0, 1).Foreground(mutedColor)
	activeTab    = tabStyle.Foreground(primaryColor).Bold(true).Underline(true)
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(mutedColor).Padding(0, 1)
	helpBorder   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Foreground(primaryColor)
)

const timeLayout = "Mon 2 Jan 2006 15:04:05 MST"

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var b strings.Builder
	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")
	if m.helpVisible {
		b.WriteString(helpBorder.Render(m.help.View(m.keys)))
		b.WriteString("\n\n")
	}

	switch m.screen {
	case CountersScreen:
		b.WriteString(renderCounters(m))
	case CountriesScreen:
		b.WriteString(renderCountries(m))
	case StatisticsScreen:
		b.WriteString(renderStatistics(m))
	case AboutScreen:
		b.WriteString(renderAbout(m))
	}

	b.WriteString("\n\n")
	b.WriteString(renderFooter(m))
	return lipgloss.NewStyle().MaxWidth(m.contentWidth()).Render(b.String())
}

func renderHeader(m Model) string {
	title := titleStyle.Render("💀 Global Death Statistics")
	clock := mutedStyle.Render(m.now.Format(timeLayout))
	pad := m.contentWidth() - lipgloss.Width(title) - lipgloss.Width(clock)
	if pad < 1 {
		pad = 1
	}

	tabs := make([]string, 0, screensCount)
	for s := Screen(0); s < Screen(screensCount); s++ {
		label := fmt.Sprintf("%d %s", int(s)+1, s)
		if s == m.screen {
			tabs = append(tabs, activeTab.Render(label))
			continue
		}
		tabs = append(tabs, tabStyle.Render(label))
	}
	return title + strings.Repeat(" ", pad) + clock + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderFooter(m Model) string {
	if m.helpVisible {
		return mutedStyle.Render("h/?: close help")
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

func renderCounters(m Model) string {
	counters := stats.LiveCounters(m.now)
	cardWidth := m.contentWidth()/countersPerRow - 2

	rows := make([]string, 0, len(counters)/countersPerRow+1)
	for start := 0; start < len(counters); start += countersPerRow {
		end := min(start+countersPerRow, len(counters))
		cards := make([]string, 0, countersPerRow)
		for _, c := range counters[start:end] {
			body := mutedStyle.Render(c.Label) + "\n" + rateStyle.Render(c.Display)
			cards = append(cards, cardStyle.Width(cardWidth).Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	r := stats.Rates()
	var b strings.Builder
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n\n")
	b.WriteString(sectionStyle.Render("Global Death Rate"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  • %s deaths per second\n", strconv.FormatFloat(r.PerSecond, 'f', 1, 64))
	fmt.Fprintf(&b, "  • %s deaths per minute\n", stats.FormatGrouped(r.PerMinute))
	fmt.Fprintf(&b, "  • %s deaths per hour\n", stats.FormatGrouped(r.PerHour))
	fmt.Fprintf(&b, "  • %s deaths per day\n", stats.FormatGrouped(r.PerDay))
	b.WriteString("\n")
	b.WriteString(noteStyle.Render("Approximate real-time estimates based on global mortality statistics."))
	return b.String()
}

func renderCountries(m Model) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Countries by Death Rate"))
	b.WriteString(mutedStyle.Render("  deaths per 1,000 people per year"))
	b.WriteString("\n")

	if m.searching || m.query != "" {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(mutedStyle.Render("/ to search"))
	}
	b.WriteString("\n")
	b.WriteString(renderRegions(m))
	b.WriteString("\n\n")

	items := len(m.countries.Items())
	if items == 0 {
		b.WriteString(mutedStyle.Render("No countries found matching your search criteria."))
	} else {
		b.WriteString(m.countries.View())
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Showing %d of %d countries", items, len(stats.Countries()))))
	return b.String()
}

func renderRegions(m Model) string {
	regions := stats.Regions()
	parts := make([]string, 0, len(regions))
	for i, r := range regions {
		if i == m.regionIdx {
			parts = append(parts, activeTab.Render(r))
			continue
		}
		parts = append(parts, tabStyle.Render(r))
	}
	return "Region (r):" + lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderStatistics(m Model) string {
	s := stats.TakeSnapshot(m.now)

	card := func(label, value string, color lipgloss.Color, note string) string {
		body := mutedStyle.Render(label) + "\n" +
			lipgloss.NewStyle().Foreground(color).Bold(true).Render(value) + "\n" +
			mutedStyle.Render(note)
		return cardStyle.Width(m.contentWidth()/2 - 2).Render(body)
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render(fmt.Sprintf("Global Population Dynamics %d", s.Year.Year)))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		card("Deaths This Year", stats.FormatLarge(s.Year.Deaths), dangerColor, "and counting..."),
		card("Births This Year", stats.FormatLarge(s.Year.Births), birthColor, "new lives"),
	))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		card("Net Growth", stats.FormatLarge(s.Year.NetGrowth), primaryColor, "population increase"),
		card("Global Population", stats.FormatLarge(s.Year.GlobalPopulation), mutedColor, "estimated total"),
	))

	b.WriteString("\n\n")
	b.WriteString(sectionStyle.Render("Daily Averages"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Deaths per day:     %s\n", rateStyle.Render(stats.FormatGrouped(s.Daily.Deaths)))
	fmt.Fprintf(&b, "  Births per day:     %s\n", lipgloss.NewStyle().Foreground(birthColor).Render(stats.FormatGrouped(s.Daily.Births)))
	fmt.Fprintf(&b, "  Net growth per day: %s\n", lipgloss.NewStyle().Foreground(primaryColor).Render("+"+stats.FormatGrouped(s.Daily.NetGrowth)))

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(fmt.Sprintf("Leading Causes of Death (%d)", s.Year.Year)))
	b.WriteString("\n")
	for _, c := range s.Causes {
		fmt.Fprintf(&b, "  %-24s %s %6s  %s\n",
			c.Name,
			m.bar.ViewAs(c.Percent/100),
			strconv.FormatFloat(c.Percent, 'f', -1, 64)+"%",
			mutedStyle.Render(stats.FormatLarge(c.Deaths)+" deaths"),
		)
	}
	b.WriteString("\n")
	b.WriteString(noteStyle.Render("All statistics are estimates based on global health data and demographic studies."))
	return b.String()
}

func renderAbout(_ Model) string {
	info := stats.About()
	var b strings.Builder
	b.WriteString(sectionStyle.Render(info.Name))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(contentMaxWidth).Render(info.Summary))
	b.WriteString("\n\n")
	b.WriteString(sectionStyle.Render("Key Features"))
	b.WriteString("\n")
	for _, f := range info.Features {
		fmt.Fprintf(&b, "  • %s: %s\n", f.Title, mutedStyle.Render(f.Description))
	}
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Data Sources"))
	b.WriteString("\n")
	for _, s := range info.DataSources {
		fmt.Fprintf(&b, "  • %s: %s\n", s.Title, mutedStyle.Render(s.Description))
	}
	b.WriteString("\n")
	b.WriteString(noteStyle.Render("Important Disclaimer"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(contentMaxWidth).Render(info.Disclaimer))
	return b.String()
}
