package tui

import "time"

// Package-level constants to avoid magic numbers and improve readability.
const (
	tickSeconds = 1
	// contentMaxWidth caps the rendered width on wide terminals.
	contentMaxWidth = 90
	// countersPerRow is the number of counter cards per row on the counters screen.
	countersPerRow = 3
	// causeBarWidth is the width of the share bars on the statistics screen.
	causeBarWidth = 30

	// listOverheadLines represents header+tabs+search+region+footer lines around the list.
	// Keep this in sync with renderCountries layout.
	listOverheadLines = 12
	// listMinHeight enforces a minimum country list height to avoid collapsing.
	listMinHeight = 5

	tickInterval = time.Duration(tickSeconds) * time.Second
)
