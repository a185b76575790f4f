package stats

import "math"

// Country is one row of the static country table.
type Country struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	// DeathRate is deaths per 1,000 people per year.
	DeathRate float64 `json:"death_rate" yaml:"death_rate" validate:"gt=0"`
	// Population is in millions.
	Population float64 `json:"population_millions" yaml:"population_millions" validate:"gt=0"`
	Region     string  `json:"region" yaml:"region" validate:"region"`
	Flag       string  `json:"flag" yaml:"flag"`
}

// Region labels used by the table. EuropeAsia is a record label only; it is
// not offered as a filter and is reached through RegionAll.
const (
	Europe       = "Europe"
	Asia         = "Asia"
	NorthAmerica = "North America"
	SouthAmerica = "South America"
	Oceania      = "Oceania"
	EuropeAsia   = "Europe/Asia"
)

// RegionAll is the filter sentinel that matches every record.
const RegionAll = "All"

// Sample data based on real world statistics (approximate).
//
//nolint:gochecknoglobals // Read-only table; exposed only through Countries.
var countries = [...]Country{
	{Name: "Bulgaria", DeathRate: 15.4, Population: 6.9, Flag: "🇧🇬", Region: Europe},
	{Name: "Ukraine", DeathRate: 14.8, Population: 43.8, Flag: "🇺🇦", Region: Europe},
	{Name: "Latvia", DeathRate: 14.6, Population: 1.9, Flag: "🇱🇻", Region: Europe},
	{Name: "Lithuania", DeathRate: 14.5, Population: 2.8, Flag: "🇱🇹", Region: Europe},
	{Name: "Serbia", DeathRate: 14.3, Population: 8.7, Flag: "🇷🇸", Region: Europe},
	{Name: "Croatia", DeathRate: 13.2, Population: 4.0, Flag: "🇭🇷", Region: Europe},
	{Name: "Romania", DeathRate: 13.0, Population: 19.1, Flag: "🇷🇴", Region: Europe},
	{Name: "Hungary", DeathRate: 12.8, Population: 9.7, Flag: "🇭🇺", Region: Europe},
	{Name: "Estonia", DeathRate: 12.7, Population: 1.3, Flag: "🇪🇪", Region: Europe},
	{Name: "Russia", DeathRate: 12.4, Population: 144.1, Flag: "🇷🇺", Region: EuropeAsia},
	{Name: "Germany", DeathRate: 11.8, Population: 83.2, Flag: "🇩🇪", Region: Europe},
	{Name: "Italy", DeathRate: 11.7, Population: 59.1, Flag: "🇮🇹", Region: Europe},
	{Name: "Japan", DeathRate: 11.6, Population: 125.8, Flag: "🇯🇵", Region: Asia},
	{Name: "Greece", DeathRate: 11.4, Population: 10.7, Flag: "🇬🇷", Region: Europe},
	{Name: "Portugal", DeathRate: 11.2, Population: 10.3, Flag: "🇵🇹", Region: Europe},
	{Name: "Finland", DeathRate: 10.1, Population: 5.5, Flag: "🇫🇮", Region: Europe},
	{Name: "Slovenia", DeathRate: 10.0, Population: 2.1, Flag: "🇸🇮", Region: Europe},
	{Name: "Czech Republic", DeathRate: 10.0, Population: 10.7, Flag: "🇨🇿", Region: Europe},
	{Name: "Denmark", DeathRate: 9.5, Population: 5.8, Flag: "🇩🇰", Region: Europe},
	{Name: "Austria", DeathRate: 9.4, Population: 9.0, Flag: "🇦🇹", Region: Europe},
	{Name: "Belgium", DeathRate: 9.3, Population: 11.6, Flag: "🇧🇪", Region: Europe},
	{Name: "Sweden", DeathRate: 9.2, Population: 10.4, Flag: "🇸🇪", Region: Europe},
	{Name: "United Kingdom", DeathRate: 9.1, Population: 67.9, Flag: "🇬🇧", Region: Europe},
	{Name: "France", DeathRate: 9.0, Population: 68.0, Flag: "🇫🇷", Region: Europe},
	{Name: "Spain", DeathRate: 8.9, Population: 47.4, Flag: "🇪🇸", Region: Europe},
	{Name: "Poland", DeathRate: 8.8, Population: 37.8, Flag: "🇵🇱", Region: Europe},
	{Name: "South Korea", DeathRate: 8.7, Population: 51.8, Flag: "🇰🇷", Region: Asia},
	{Name: "Netherlands", DeathRate: 8.6, Population: 17.4, Flag: "🇳🇱", Region: Europe},
	{Name: "Canada", DeathRate: 8.5, Population: 38.2, Flag: "🇨🇦", Region: NorthAmerica},
	{Name: "United States", DeathRate: 8.4, Population: 331.9, Flag: "🇺🇸", Region: NorthAmerica},
	{Name: "China", DeathRate: 7.1, Population: 1412.0, Flag: "🇨🇳", Region: Asia},
	{Name: "Australia", DeathRate: 6.8, Population: 25.7, Flag: "🇦🇺", Region: Oceania},
	{Name: "Brazil", DeathRate: 6.7, Population: 215.3, Flag: "🇧🇷", Region: SouthAmerica},
	{Name: "India", DeathRate: 6.0, Population: 1380.0, Flag: "🇮🇳", Region: Asia},
	{Name: "Mexico", DeathRate: 5.4, Population: 128.9, Flag: "🇲🇽", Region: NorthAmerica},
}

// Countries returns a copy of the country table in table order.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries[:])
	return out
}

// Regions returns the region filters offered to users, RegionAll first.
func Regions() []string {
	return []string{RegionAll, Europe, Asia, NorthAmerica, SouthAmerica, Oceania}
}

// RecordRegions returns every label a Country.Region may carry.
func RecordRegions() []string {
	return []string{Europe, Asia, NorthAmerica, SouthAmerica, Oceania, EuropeAsia}
}

// EstimateAnnualDeaths returns round(DeathRate/1000 * Population * 1e6).
// math.Round rounds half away from zero.
func EstimateAnnualDeaths(c Country) int64 {
	return int64(math.Round(c.DeathRate / ratePerPopulation * c.Population * populationUnit))
}
