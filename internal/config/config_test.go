package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate points the config search paths at an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeConfig(t *testing.T, values map[string]any) string {
	t.Helper()
	b, err := yaml.Marshal(values)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "mortality.yaml")
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	opts, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, Options{Region: "All", Output: TextOut}, opts)
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, map[string]any{
		"region": "north america",
		"query":  "united",
		"output": "YAML",
		"tz":     "Europe/Berlin",
	})

	v := New()
	v.Set(KeyConfig, path)
	opts, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "North America", opts.Region)
	assert.Equal(t, "united", opts.Query)
	assert.Equal(t, YAMLOut, opts.Output)
	assert.Equal(t, "Europe/Berlin", opts.Timezone)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, map[string]any{"region": "Asia"})
	t.Setenv("MORTALITY_REGION", "Oceania")
	t.Setenv("MORTALITY_OUTPUT", "json")

	v := New()
	v.Set(KeyConfig, path)
	opts, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "Oceania", opts.Region)
	assert.Equal(t, JSONOut, opts.Output)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown region", KeyRegion, "Atlantis"},
		{"composite region is not a filter", KeyRegion, "Europe/Asia"},
		{"unknown output", KeyOutput, "xml"},
		{"unknown time zone", KeyTZ, "Mars/Olympus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			v := New()
			v.Set(tt.key, tt.val)
			_, err := Load(v)
			require.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	v := New()
	v.Set(KeyConfig, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load(v)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidOptions)
}

func TestOptions_Location(t *testing.T) {
	loc, err := Options{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = Options{Timezone: "Asia/Tokyo"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())

	_, err = Options{Timezone: "Nowhere/Special"}.Location()
	require.Error(t, err)
}

func TestNewClock(t *testing.T) {
	fixed := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	loc := time.FixedZone("UTC-5", -5*60*60)
	clock := NewClock(func() time.Time { return fixed }, loc)

	got := clock()
	assert.True(t, fixed.Equal(got))
	assert.Equal(t, 7, got.Hour())
	assert.Equal(t, loc, got.Location())
}
