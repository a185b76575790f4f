//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package report

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/mortality/internal/config"
	"github.com/ensigniasec/mortality/internal/stats"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func fixedNow() time.Time {
	return time.Date(2024, time.March, 15, 10, 20, 30, 0, time.UTC)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Counters(&buf, fixedNow(), "xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Empty(t, buf.String())
}

func TestCount_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Count(&buf, stats.Hour, fixedNow(), config.TextOut))
	assert.Equal(t, "Deaths This Hour: 2,214\n", buf.String())
}

func TestCount_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Count(&buf, stats.Day, fixedNow(), config.JSONOut))

	var got CountResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "day", got.Period)
	assert.Equal(t, int64(67014), got.Value)
	assert.Equal(t, "67.0K", got.Display)
}

func TestCounters_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Counters(&buf, fixedNow(), config.TextOut))
	out := buf.String()

	for _, want := range []string{
		"GLOBAL DEATH STATISTICS",
		"Deaths This Second",
		"Deaths This Year",
		"11.6M",
		"1.8 deaths per second",
		"108 deaths per minute",
		"155,520 deaths per day",
		"56,803,680 deaths per year",
	} {
		assert.Contains(t, out, want)
	}
}

func TestCounters_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Counters(&buf, fixedNow(), config.YAMLOut))

	var got struct {
		Counters []stats.Counter   `yaml:"counters"`
		Rates    stats.RateSummary `yaml:"rates"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Counters, 6)
	assert.Equal(t, "minute", got.Counters[1].Period)
	assert.Equal(t, int64(54), got.Counters[1].Value)
	assert.Equal(t, int64(6480), got.Rates.PerHour)
}

func TestCountries_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Countries(&buf, "", stats.Asia, config.TextOut))
	out := buf.String()

	assert.Contains(t, out, "Region: Asia")
	for _, name := range []string{"Japan", "South Korea", "China", "India"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "Germany")
	assert.Contains(t, out, "~10.0M")
	assert.Contains(t, out, "Showing 4 of 35 countries")
	assert.Less(t, strings.Index(out, "Japan"), strings.Index(out, "India"))
}

func TestCountries_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Countries(&buf, "zzz", stats.RegionAll, config.TextOut))
	assert.Contains(t, buf.String(), "No countries found matching your search criteria.")
}

func TestCountries_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Countries(&buf, "GERMANY", stats.RegionAll, config.JSONOut))

	var got CountriesPayload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Countries, 1)
	assert.Equal(t, "Germany", got.Countries[0].Country.Name)
	assert.Equal(t, int64(981_760), got.Countries[0].AnnualDeaths)
	assert.Equal(t, "982K", got.Countries[0].AnnualDisplay)
}

func TestStatistics_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Statistics(&buf, fixedNow(), config.TextOut))
	out := buf.String()

	for _, want := range []string{
		"Global Population Dynamics 2024",
		"8.00B",
		"155,520",
		"371,520",
		"+216,000",
		"LEADING CAUSES OF DEATH (2024)",
		"Cardiovascular Disease",
		"31.8%",
		"Alzheimer's & Dementia",
	} {
		assert.Contains(t, out, want)
	}
}

func TestStatistics_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Statistics(&buf, fixedNow(), config.JSONOut))

	var got stats.Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, stats.Dynamics(fixedNow()), got.Year)
	assert.Len(t, got.Causes, 8)
}

func TestAbout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, About(&buf, "1.2.3", config.TextOut))
	out := buf.String()
	assert.Contains(t, out, "World Health Organization (WHO)")
	assert.Contains(t, out, "IMPORTANT DISCLAIMER")
	assert.Contains(t, out, "Version 1.2.3")

	buf.Reset()
	require.NoError(t, About(&buf, "1.2.3", config.YAMLOut))
	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "1.2.3", got["version"])
	assert.Equal(t, "Global Death Statistics", got["name"])
}
