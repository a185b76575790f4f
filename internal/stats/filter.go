package stats

import (
	"cmp"
	"slices"
	"strings"
)

// FilterAndSort returns the records of dataset whose name contains query
// (case-insensitive) and whose region equals region, ordered by death rate,
// highest first. RegionAll disables the region predicate and an empty query
// matches every name. Ties keep their dataset order. dataset is not modified.
func FilterAndSort(dataset []Country, query, region string) []Country {
	needle := strings.ToLower(query)
	out := make([]Country, 0, len(dataset))
	for _, c := range dataset {
		if !strings.Contains(strings.ToLower(c.Name), needle) {
			continue
		}
		if region != RegionAll && c.Region != region {
			continue
		}
		out = append(out, c)
	}
	slices.SortStableFunc(out, func(a, b Country) int {
		return cmp.Compare(b.DeathRate, a.DeathRate)
	})
	return out
}

// RankedCountry pairs a filtered record with its list position and derived figures.
type RankedCountry struct {
	Rank         int     `json:"rank" yaml:"rank"`
	Country      Country `json:"country" yaml:"country"`
	AnnualDeaths int64   `json:"annual_deaths" yaml:"annual_deaths"`
	// AnnualDisplay is the FormatCompact rendering of AnnualDeaths.
	AnnualDisplay string `json:"annual_display" yaml:"annual_display"`
}

// Rank applies FilterAndSort to the built-in table and annotates each match.
func Rank(query, region string) []RankedCountry {
	matches := FilterAndSort(Countries(), query, region)
	ranked := make([]RankedCountry, 0, len(matches))
	for i, c := range matches {
		deaths := EstimateAnnualDeaths(c)
		ranked = append(ranked, RankedCountry{
			Rank:          i + 1,
			Country:       c,
			AnnualDeaths:  deaths,
			AnnualDisplay: FormatCompact(deaths),
		})
	}
	return ranked
}
