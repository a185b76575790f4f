package stats

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Granularity selects the calendar period a counter accumulates over.
type Granularity int

const (
	Second Granularity = iota
	Minute
	Hour
	Day
	Month
	Year
)

// ErrUnknownGranularity is returned by ParseGranularity for unrecognized names.
var ErrUnknownGranularity = errors.New("unknown granularity")

//nolint:gochecknoglobals // Lookup table for the closed Granularity enum.
var granularityNames = [...]string{
	Second: "second",
	Minute: "minute",
	Hour:   "hour",
	Day:    "day",
	Month:  "month",
	Year:   "year",
}

// Granularities returns every granularity from finest to coarsest.
func Granularities() []Granularity {
	return []Granularity{Second, Minute, Hour, Day, Month, Year}
}

// Valid reports whether g is one of the declared granularities.
func (g Granularity) Valid() bool {
	return g >= Second && g <= Year
}

func (g Granularity) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
	return granularityNames[g]
}

// ParseGranularity maps a case-insensitive name ("hour", "Day", ...) to a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range granularityNames {
		if n == name {
			return Granularity(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGranularity, s)
}

// PeriodStart truncates now to the start of its second, minute, hour, day,
// month or year using the wall-clock fields of now's own location.
//
// An undeclared Granularity panics. Granularity is a closed enum, so such a
// value is a programming error and is never mapped to a silent zero count.
func PeriodStart(g Granularity, now time.Time) time.Time {
	y, mo, d := now.Date()
	h, mi, s := now.Clock()
	loc := now.Location()

	switch g {
	case Second:
		return time.Date(y, mo, d, h, mi, s, 0, loc)
	case Minute:
		return time.Date(y, mo, d, h, mi, 0, 0, loc)
	case Hour:
		return time.Date(y, mo, d, h, 0, 0, 0, loc)
	case Day:
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(y, mo, 1, 0, 0, 0, 0, loc)
	case Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	}
	panic(fmt.Sprintf("stats: invalid granularity %d", int(g)))
}

// ElapsedSeconds returns the whole seconds between the start of the period and now.
func ElapsedSeconds(g Granularity, now time.Time) int64 {
	elapsed := int64(now.Sub(PeriodStart(g, now)) / time.Second)
	if elapsed < 0 {
		// time.Date normalization around DST gaps can place the start after now.
		return 0
	}
	return elapsed
}

// Count returns the deaths accumulated since the start of the period
// containing now, at DeathsPerSecond.
func Count(g Granularity, now time.Time) int64 {
	return CountAt(g, now, DeathsPerSecond)
}

// CountAt is Count for an arbitrary per-second rate.
func CountAt(g Granularity, now time.Time, perSecond float64) int64 {
	return accumulate(ElapsedSeconds(g, now), perSecond)
}

func accumulate(seconds int64, perSecond float64) int64 {
	return int64(math.Floor(float64(seconds) * perSecond))
}
