package tui

// Message types for Bubble Tea update loop.

// tickMsg fires every second to refresh the clock-driven figures.
type tickMsg struct{}
