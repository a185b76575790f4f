package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ensigniasec/mortality/internal/stats"
)

const timestampLayout = "2006-01-02 15:04:05 MST"

// CountResult is the payload of a single counter query.
type CountResult struct {
	Period  string    `json:"period" yaml:"period"`
	At      time.Time `json:"at" yaml:"at"`
	Value   int64     `json:"value" yaml:"value"`
	Display string    `json:"display" yaml:"display"`
}

// CountersPayload is the structured form of the counters screen.
type CountersPayload struct {
	At       time.Time         `json:"at" yaml:"at"`
	Counters []stats.Counter   `json:"counters" yaml:"counters"`
	Rates    stats.RateSummary `json:"rates" yaml:"rates"`
}

// CountriesPayload is the structured form of the countries screen.
type CountriesPayload struct {
	Query     string                `json:"query" yaml:"query"`
	Region    string                `json:"region" yaml:"region"`
	Countries []stats.RankedCountry `json:"countries" yaml:"countries"`
}

// AboutPayload is the structured form of the about screen.
type AboutPayload struct {
	stats.AboutInfo `yaml:",inline"`
	Version         string `json:"version" yaml:"version"`
}

// Count prints one counter value.
func Count(w io.Writer, g stats.Granularity, now time.Time, format string) error {
	v := stats.Count(g, now)
	res := CountResult{Period: g.String(), At: now, Value: v, Display: stats.Format(v)}
	return write(w, format, res, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s: %s\n", g.Label(), stats.FormatGrouped(v))
		return err
	})
}

// Counters prints the live counters and the global rate summary at now.
func Counters(w io.Writer, now time.Time, format string) error {
	payload := CountersPayload{At: now, Counters: stats.LiveCounters(now), Rates: stats.Rates()}
	return write(w, format, payload, func(w io.Writer) error {
		return writeCountersText(w, payload)
	})
}

func writeCountersText(w io.Writer, p CountersPayload) error {
	out := &textWriter{w: w}
	out.banner("Global Death Statistics", "Real-time mortality data worldwide")
	out.printf("Time: %s\n", p.At.Format(timestampLayout))
	out.heading("LIVE DEATH COUNTERS")
	for _, c := range p.Counters {
		out.printf("   %-20s %12s\n", c.Label, dangerColor.Sprint(c.Display))
	}
	out.heading("GLOBAL DEATH RATES")
	out.printf("   • %s deaths per second\n", strconv.FormatFloat(p.Rates.PerSecond, 'f', 1, 64))
	out.printf("   • %s deaths per minute\n", stats.FormatGrouped(p.Rates.PerMinute))
	out.printf("   • %s deaths per hour\n", stats.FormatGrouped(p.Rates.PerHour))
	out.printf("   • %s deaths per day\n", stats.FormatGrouped(p.Rates.PerDay))
	out.printf("   • %s deaths per year\n", stats.FormatGrouped(p.Rates.PerYear))
	out.note("Data is based on global mortality statistics and provides approximate real-time estimates.")
	return out.err
}

// Countries prints the countries matching query and region, highest death rate first.
func Countries(w io.Writer, query, region, format string) error {
	payload := CountriesPayload{Query: query, Region: region, Countries: stats.Rank(query, region)}
	return write(w, format, payload, func(w io.Writer) error {
		return writeCountriesText(w, payload)
	})
}

func writeCountriesText(w io.Writer, p CountriesPayload) error {
	out := &textWriter{w: w}
	out.banner("Countries by Death Rate", "Deaths per 1,000 people per year")
	out.printf("Region: %s", p.Region)
	if p.Query != "" {
		out.printf("  Search: %q", p.Query)
	}
	out.printf("\n\n")
	if out.err != nil {
		return out.err
	}

	if len(p.Countries) == 0 {
		out.printf("%s\n", mutedColor.Sprint("No countries found matching your search criteria."))
		return out.err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Flag", "Country", "Region", "Pop (M)", "Rate", "Deaths/yr"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(p.Countries))
	for _, rc := range p.Countries {
		data = append(data, []string{
			"#" + strconv.Itoa(rc.Rank),
			rc.Country.Flag,
			rc.Country.Name,
			rc.Country.Region,
			strconv.FormatFloat(rc.Country.Population, 'f', -1, 64),
			dangerColor.Sprint(strconv.FormatFloat(rc.Country.DeathRate, 'f', -1, 64)),
			"~" + rc.AnnualDisplay,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	out.printf("Showing %d of %d countries\n", len(p.Countries), len(stats.Countries()))
	return out.err
}

// Statistics prints the detailed statistics screen at now.
func Statistics(w io.Writer, now time.Time, format string) error {
	snap := stats.TakeSnapshot(now)
	return write(w, format, snap, func(w io.Writer) error {
		return writeStatisticsText(w, snap)
	})
}

func writeStatisticsText(w io.Writer, s stats.Snapshot) error {
	out := &textWriter{w: w}
	out.banner("Detailed Statistics", fmt.Sprintf("Global Population Dynamics %d", s.Year.Year))

	out.heading("THIS YEAR")
	out.printf("   %-20s %10s  %s\n", "Deaths This Year", dangerColor.Sprint(stats.FormatLarge(s.Year.Deaths)), "and counting...")
	out.printf("   %-20s %10s  %s\n", "Births This Year", birthColor.Sprint(stats.FormatLarge(s.Year.Births)), "new lives")
	out.printf("   %-20s %10s  %s\n", "Net Growth", primaryColor.Sprint(stats.FormatLarge(s.Year.NetGrowth)), "population increase")
	out.printf("   %-20s %10s  %s\n", "Global Population", stats.FormatLarge(s.Year.GlobalPopulation), "estimated total")

	out.heading("DAILY AVERAGES")
	out.printf("   %-20s %12s\n", "Deaths per day:", dangerColor.Sprint(stats.FormatGrouped(s.Daily.Deaths)))
	out.printf("   %-20s %12s\n", "Births per day:", birthColor.Sprint(stats.FormatGrouped(s.Daily.Births)))
	out.printf("   %-20s %12s\n", "Net growth per day:", primaryColor.Sprint("+"+stats.FormatGrouped(s.Daily.NetGrowth)))

	out.heading(fmt.Sprintf("LEADING CAUSES OF DEATH (%d)", s.Year.Year))
	for _, c := range s.Causes {
		out.printf("   %-24s %8s deaths  %s\n",
			c.Name,
			stats.FormatLarge(c.Deaths),
			dangerColor.Sprint(strconv.FormatFloat(c.Percent, 'f', -1, 64)+"%"),
		)
	}
	out.note("All statistics are estimates based on global health data and demographic studies.")
	return out.err
}

// About prints the about screen.
func About(w io.Writer, version, format string) error {
	payload := AboutPayload{AboutInfo: stats.About(), Version: version}
	return write(w, format, payload, func(w io.Writer) error {
		out := &textWriter{w: w}
		out.banner(payload.Name, "")
		out.printf("%s\n", payload.Summary)
		out.heading("KEY FEATURES")
		for _, f := range payload.Features {
			out.printf("   • %s: %s\n", f.Title, mutedColor.Sprint(f.Description))
		}
		out.heading("DATA SOURCES")
		for _, s := range payload.DataSources {
			out.printf("   • %s: %s\n", s.Title, mutedColor.Sprint(s.Description))
		}
		out.heading("IMPORTANT DISCLAIMER")
		out.printf("%s\n", payload.Disclaimer)
		out.printf("\nVersion %s\n", payload.Version)
		return out.err
	})
}
