package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveCounters(t *testing.T) {
	counters := LiveCounters(fixedInstant())
	require.Len(t, counters, 6)

	assert.Equal(t, "Deaths This Second", counters[0].Label)
	assert.Equal(t, int64(0), counters[0].Value)
	assert.Equal(t, "0", counters[0].Display)

	assert.Equal(t, "hour", counters[2].Period)
	assert.Equal(t, int64(2214), counters[2].Value)
	assert.Equal(t, "2.2K", counters[2].Display)

	assert.Equal(t, "Deaths This Year", counters[5].Label)
	assert.Equal(t, "11.6M", counters[5].Display)
}

func TestRates(t *testing.T) {
	r := Rates()
	assert.InDelta(t, 1.8, r.PerSecond, 1e-9)
	assert.Equal(t, int64(108), r.PerMinute)
	assert.Equal(t, int64(6480), r.PerHour)
	assert.Equal(t, int64(155_520), r.PerDay)
	assert.Equal(t, int64(4_734_029), r.PerMonth)
	assert.Equal(t, int64(56_803_680), r.PerYear)
}

func TestDynamics(t *testing.T) {
	d := Dynamics(fixedInstant())
	assert.Equal(t, 2024, d.Year)
	assert.Equal(t, int64(6_430_830), d.ElapsedSeconds)
	assert.Equal(t, int64(11_575_494), d.Deaths)
	assert.Equal(t, int64(27_652_569), d.Births)
	assert.Equal(t, d.Births-d.Deaths, d.NetGrowth)
	assert.Equal(t, "8.00B", FormatLarge(d.GlobalPopulation))
}

func TestDaily(t *testing.T) {
	assert.Equal(t, DailyAverages{Deaths: 155_520, Births: 371_520, NetGrowth: 216_000}, Daily())
}

func TestCausesOfDeath(t *testing.T) {
	causes := CausesOfDeath(11_575_494)
	require.Len(t, causes, 8)

	want := []int64{3_681_007, 1_967_834, 787_134, 706_105, 682_954, 347_265, 555_624, 2_847_572}
	var total float64
	for i, c := range causes {
		assert.Equal(t, want[i], c.Deaths, c.Name)
		total += c.Percent
	}
	assert.Equal(t, "Cardiovascular Disease", causes[0].Name)
	assert.Equal(t, "Other Causes", causes[7].Name)
	assert.InDelta(t, 100.0, total, 1e-9)

	for _, c := range CausesOfDeath(0) {
		assert.Zero(t, c.Deaths)
	}
}

func TestTakeSnapshot(t *testing.T) {
	now := fixedInstant()
	s := TakeSnapshot(now)
	assert.True(t, now.Equal(s.At))
	assert.Equal(t, LiveCounters(now), s.Counters)
	assert.Equal(t, CausesOfDeath(s.Year.Deaths), s.Causes)
	assert.Equal(t, s, TakeSnapshot(now))
}

func TestAbout(t *testing.T) {
	a := About()
	assert.Equal(t, "Global Death Statistics", a.Name)
	assert.Len(t, a.Features, 4)
	assert.Len(t, a.DataSources, 4)
	assert.NotEmpty(t, a.Disclaimer)
}
