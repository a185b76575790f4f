//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024 is a leap year: 31 (Jan) + 29 (Feb) + 14 whole days of March precede the instant.
func fixedInstant() time.Time {
	return time.Date(2024, time.March, 15, 10, 20, 30, 750*int(time.Millisecond), time.UTC)
}

func TestPeriodStart(t *testing.T) {
	now := fixedInstant()

	tests := []struct {
		g    Granularity
		want time.Time
	}{
		{Second, time.Date(2024, time.March, 15, 10, 20, 30, 0, time.UTC)},
		{Minute, time.Date(2024, time.March, 15, 10, 20, 0, 0, time.UTC)},
		{Hour, time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)},
		{Day, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{Month, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{Year, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.g.String(), func(t *testing.T) {
			assert.True(t, tt.want.Equal(PeriodStart(tt.g, now)), "got %s", PeriodStart(tt.g, now))
		})
	}
}

func TestPeriodStart_UsesInstantLocation(t *testing.T) {
	// 23:30 UTC on Dec 31 is already Jan 1 in UTC+2, so the year starts differ.
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2023, time.December, 31, 23, 30, 0, 0, time.UTC).In(loc)

	start := PeriodStart(Year, now)
	assert.Equal(t, 2024, start.Year())
	assert.Equal(t, loc, start.Location())
	assert.Equal(t, int64(90*60), ElapsedSeconds(Year, now))
}

func TestCount(t *testing.T) {
	now := fixedInstant()

	tests := []struct {
		g       Granularity
		elapsed int64
		want    int64
	}{
		{Second, 0, 0},
		{Minute, 30, 54},
		{Hour, 1230, 2214},
		{Day, 37230, 67014},
		{Month, 1246830, 2244294},
		{Year, 6430830, 11575494},
	}
	for _, tt := range tests {
		t.Run(tt.g.String(), func(t *testing.T) {
			assert.Equal(t, tt.elapsed, ElapsedSeconds(tt.g, now))
			assert.Equal(t, tt.want, Count(tt.g, now))
		})
	}
}

func TestCount_ZeroAtPeriodStart(t *testing.T) {
	now := fixedInstant()
	for _, g := range Granularities() {
		assert.Equal(t, int64(0), Count(g, PeriodStart(g, now)), g.String())
	}
}

func TestCount_MonotonicWithinPeriod(t *testing.T) {
	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	for _, g := range []Granularity{Minute, Hour, Day, Month, Year} {
		prev := int64(-1)
		for step := 0; step < 50; step++ {
			now := start.Add(time.Duration(step) * 1100 * time.Millisecond)
			got := Count(g, now)
			require.GreaterOrEqual(t, got, int64(0))
			require.GreaterOrEqual(t, got, prev, "%s at step %d", g, step)
			prev = got
		}
	}
}

func TestCount_Idempotent(t *testing.T) {
	now := fixedInstant()
	for _, g := range Granularities() {
		assert.Equal(t, Count(g, now), Count(g, now))
	}
}

func TestCountAt_BirthRate(t *testing.T) {
	assert.Equal(t, int64(5289), CountAt(Hour, fixedInstant(), BirthsPerSecond))
}

func TestCount_InvalidGranularityPanics(t *testing.T) {
	assert.Panics(t, func() { Count(Granularity(42), fixedInstant()) })
	assert.Panics(t, func() { PeriodStart(Granularity(-1), fixedInstant()) })
}

func TestParseGranularity(t *testing.T) {
	for _, g := range Granularities() {
		got, err := ParseGranularity(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, got)
	}

	got, err := ParseGranularity("  HOUR ")
	require.NoError(t, err)
	assert.Equal(t, Hour, got)

	_, err = ParseGranularity("week")
	require.ErrorIs(t, err, ErrUnknownGranularity)
	assert.Contains(t, err.Error(), `"week"`)
}

func TestGranularity_String(t *testing.T) {
	assert.Equal(t, "month", Month.String())
	assert.Equal(t, "Granularity(9)", Granularity(9).String())
	assert.False(t, Granularity(9).Valid())
	assert.Equal(t, "Deaths Today", Day.Label())
}
