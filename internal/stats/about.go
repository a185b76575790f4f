package stats

// Entry is a titled line on the about screen.
type Entry struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// AboutInfo is the static content of the about screen.
type AboutInfo struct {
	Name        string  `json:"name" yaml:"name"`
	Summary     string  `json:"summary" yaml:"summary"`
	Features    []Entry `json:"features" yaml:"features"`
	DataSources []Entry `json:"data_sources" yaml:"data_sources"`
	Disclaimer  string  `json:"disclaimer" yaml:"disclaimer"`
}

// About returns the about screen content.
func About() AboutInfo {
	return AboutInfo{
		Name: "Global Death Statistics",
		Summary: "Real-time estimates of global mortality, derived from average worldwide " +
			"death and birth rates and a reference table of national death rates.",
		Features: []Entry{
			{Title: "Real-time Counters", Description: "Live death statistics updated every second"},
			{Title: "Country Rankings", Description: "Compare death rates across different nations"},
			{Title: "Detailed Analytics", Description: "In-depth statistics and demographic insights"},
			{Title: "Causes of Death", Description: "Breakdown by leading causes of mortality"},
		},
		DataSources: []Entry{
			{Title: "World Health Organization (WHO)", Description: "Global health statistics and mortality data"},
			{Title: "United Nations Population Division", Description: "World population prospects and demographic data"},
			{Title: "World Bank", Description: "Country-specific death rates and health indicators"},
			{Title: "Our World in Data", Description: "Research and data on global health trends"},
		},
		Disclaimer: "All figures are estimates based on available global health data. Actual numbers " +
			"vary with reporting delays, data collection methods and events such as pandemics, " +
			"natural disasters or conflicts. For educational and informational purposes only.",
	}
}
