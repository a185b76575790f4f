package tui

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/mortality/internal/config"
	"github.com/ensigniasec/mortality/internal/stats"
)

// Screen is one of the top-level views.
type Screen int

const (
	CountersScreen Screen = iota
	CountriesScreen
	StatisticsScreen
	AboutScreen

	screensCount = 4
)

//nolint:gochecknoglobals // Tab titles for the closed Screen enum.
var screenTitles = [...]string{
	CountersScreen:   "Live Counters",
	CountriesScreen:  "Countries",
	StatisticsScreen: "Statistics",
	AboutScreen:      "About",
}

func (s Screen) String() string {
	if s < 0 || s >= screensCount {
		return "unknown"
	}
	return screenTitles[s]
}

// Model is the root Bubble Tea model.
type Model struct {
	clock    config.Clock
	now      time.Time
	screen   Screen
	width    int
	height   int
	quitting bool

	// countries screen state
	query     string
	regionIdx int
	searching bool
	search    textinput.Model
	countries list.Model

	// statistics screen share bars
	bar progress.Model

	// ui state
	helpVisible bool
	help        help.Model

	// keymap for consistent keybindings
	keys keyMap
}

// NewModel constructs a Model reading time from clock and seeded with the
// query and region of opts.
func NewModel(clock config.Clock, opts config.Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Search countries..."
	ti.Prompt = "🔍 "
	ti.SetValue(opts.Query)

	lst := list.New([]list.Item{}, countriesDelegate{}, contentMaxWidth, listMinHeight)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowPagination(true)
	lst.DisableQuitKeybindings()

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = causeBarWidth

	m := Model{
		clock:     clock,
		now:       clock(),
		query:     opts.Query,
		regionIdx: max(slices.Index(stats.Regions(), opts.Region), 0),
		search:    ti,
		countries: lst,
		bar:       bar,
		help:      help.New(),
		keys:      newKeyMap(),
	}
	m.syncCountries()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// tick schedules the next clock refresh.
func (m Model) tick() tea.Cmd {
	return func() tea.Msg {
		time.Sleep(tickInterval)
		return tickMsg{}
	}
}

// Region returns the active region filter.
func (m Model) Region() string {
	return stats.Regions()[m.regionIdx]
}

// Screen returns the active screen.
func (m Model) Screen() Screen {
	return m.screen
}

// Query returns the active country name search.
func (m Model) Query() string {
	return m.query
}
