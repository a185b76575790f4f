package stats

import (
	"math"
	"time"
)

// Counter is one labelled live counter.
type Counter struct {
	Granularity Granularity `json:"-" yaml:"-"`
	Period      string      `json:"period" yaml:"period"`
	Label       string      `json:"label" yaml:"label"`
	Value       int64       `json:"value" yaml:"value"`
	Display     string      `json:"display" yaml:"display"`
}

//nolint:gochecknoglobals // Display labels for the closed Granularity enum.
var counterLabels = [...]string{
	Second: "Deaths This Second",
	Minute: "Deaths This Minute",
	Hour:   "Deaths This Hour",
	Day:    "Deaths Today",
	Month:  "Deaths This Month",
	Year:   "Deaths This Year",
}

// Label returns the counter title for g.
func (g Granularity) Label() string {
	if !g.Valid() {
		return g.String()
	}
	return counterLabels[g]
}

// LiveCounters evaluates Count for every granularity at now.
func LiveCounters(now time.Time) []Counter {
	out := make([]Counter, 0, len(counterLabels))
	for _, g := range Granularities() {
		v := Count(g, now)
		out = append(out, Counter{
			Granularity: g,
			Period:      g.String(),
			Label:       g.Label(),
			Value:       v,
			Display:     Format(v),
		})
	}
	return out
}

// RateSummary lists the global death rate at each scale.
type RateSummary struct {
	PerSecond float64 `json:"per_second" yaml:"per_second"`
	PerMinute int64   `json:"per_minute" yaml:"per_minute"`
	PerHour   int64   `json:"per_hour" yaml:"per_hour"`
	PerDay    int64   `json:"per_day" yaml:"per_day"`
	PerMonth  int64   `json:"per_month" yaml:"per_month"`
	PerYear   int64   `json:"per_year" yaml:"per_year"`
}

// Rates derives the rate summary from DeathsPerSecond. Month and year use
// the average lengths DaysPerMonth and DaysPerYear.
func Rates() RateSummary {
	perDay := DeathsPerSecond * SecondsPerDay
	return RateSummary{
		PerSecond: DeathsPerSecond,
		PerMinute: roundInt(DeathsPerSecond * SecondsPerMinute),
		PerHour:   roundInt(DeathsPerSecond * SecondsPerHour),
		PerDay:    roundInt(perDay),
		PerMonth:  roundInt(perDay * DaysPerMonth),
		PerYear:   roundInt(perDay * DaysPerYear),
	}
}

// YearDynamics holds the births, deaths and net growth since the start of the year.
type YearDynamics struct {
	Year             int   `json:"year" yaml:"year"`
	ElapsedSeconds   int64 `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Deaths           int64 `json:"deaths" yaml:"deaths"`
	Births           int64 `json:"births" yaml:"births"`
	NetGrowth        int64 `json:"net_growth" yaml:"net_growth"`
	GlobalPopulation int64 `json:"global_population" yaml:"global_population"`
}

// Dynamics computes YearDynamics for the calendar year containing now.
func Dynamics(now time.Time) YearDynamics {
	elapsed := ElapsedSeconds(Year, now)
	deaths := accumulate(elapsed, DeathsPerSecond)
	births := accumulate(elapsed, BirthsPerSecond)
	return YearDynamics{
		Year:             now.Year(),
		ElapsedSeconds:   elapsed,
		Deaths:           deaths,
		Births:           births,
		NetGrowth:        births - deaths,
		GlobalPopulation: GlobalPopulation,
	}
}

// DailyAverages are whole-day figures derived from the per-second rates.
type DailyAverages struct {
	Deaths    int64 `json:"deaths" yaml:"deaths"`
	Births    int64 `json:"births" yaml:"births"`
	NetGrowth int64 `json:"net_growth" yaml:"net_growth"`
}

// Daily returns the rounded per-day deaths, births and their difference.
func Daily() DailyAverages {
	deaths := roundInt(DeathsPerSecond * SecondsPerDay)
	births := roundInt(BirthsPerSecond * SecondsPerDay)
	return DailyAverages{Deaths: deaths, Births: births, NetGrowth: births - deaths}
}

// Cause is one entry of the leading causes of death breakdown.
type Cause struct {
	Name    string  `json:"cause" yaml:"cause"`
	Percent float64 `json:"percentage" yaml:"percentage"`
	Deaths  int64   `json:"deaths" yaml:"deaths"`
}

type causeShare struct {
	name    string
	percent float64
}

// Leading causes of death (approximate percentages).
//
//nolint:gochecknoglobals // Read-only breakdown table.
var causeShares = [...]causeShare{
	{"Cardiovascular Disease", 31.8},
	{"Cancer", 17.0},
	{"Respiratory Disease", 6.8},
	{"Alzheimer's & Dementia", 6.1},
	{"Stroke", 5.9},
	{"Diabetes", 3.0},
	{"Accidents", 4.8},
	{"Other Causes", 24.6},
}

// CausesOfDeath splits deaths across the leading causes, rounding each share.
// Entries keep the table order; they are not sorted by share.
func CausesOfDeath(deaths int64) []Cause {
	out := make([]Cause, 0, len(causeShares))
	for _, c := range causeShares {
		out = append(out, Cause{
			Name:    c.name,
			Percent: c.percent,
			Deaths:  roundInt(float64(deaths) * c.percent / percentDenominator),
		})
	}
	return out
}

// Snapshot bundles everything the statistics screen renders for one instant.
type Snapshot struct {
	At       time.Time     `json:"at" yaml:"at"`
	Counters []Counter     `json:"counters" yaml:"counters"`
	Rates    RateSummary   `json:"rates" yaml:"rates"`
	Year     YearDynamics  `json:"year" yaml:"year"`
	Daily    DailyAverages `json:"daily" yaml:"daily"`
	Causes   []Cause       `json:"causes" yaml:"causes"`
}

// TakeSnapshot evaluates every derived figure at now.
func TakeSnapshot(now time.Time) Snapshot {
	year := Dynamics(now)
	return Snapshot{
		At:       now,
		Counters: LiveCounters(now),
		Rates:    Rates(),
		Year:     year,
		Daily:    Daily(),
		Causes:   CausesOfDeath(year.Deaths),
	}
}

func roundInt(v float64) int64 {
	return int64(math.Round(v))
}
