// Package stats derives the illustrative mortality figures shown by the CLI and TUI.
//
// Every function here is a pure projection of its arguments and the fixed
// constants below. Callers pass the current instant explicitly; nothing in
// this package reads the wall clock.
package stats

// Global rates and reference figures (approximate).
const (
	DeathsPerSecond  = 1.8
	BirthsPerSecond  = 4.3
	GlobalPopulation = int64(8_000_000_000)

	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour

	// DaysPerMonth and DaysPerYear are averages used only for the rate summary.
	DaysPerMonth = 30.44
	DaysPerYear  = 365.25
)

// Country table units.
const (
	ratePerPopulation  = 1000.0
	populationUnit     = 1_000_000.0
	thousand           = 1_000
	million            = 1_000_000
	billion            = 1_000_000_000
	percentDenominator = 100.0
)
