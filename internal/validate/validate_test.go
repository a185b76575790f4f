package validate

import (
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/mortality/internal/stats"
)

func TestStruct_CountryTable(t *testing.T) {
	for _, c := range stats.Countries() {
		require.NoError(t, Struct(c), c.Name)
	}
}

func TestStruct_RejectsBadCountry(t *testing.T) {
	bad := stats.Country{Name: "", DeathRate: 0, Population: 1, Region: "Atlantis"}
	err := Struct(bad)
	require.Error(t, err)
	for _, field := range []string{"Name", "DeathRate", "Region"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestVar_CustomTags(t *testing.T) {
	tests := []struct {
		value string
		tag   string
		ok    bool
	}{
		{"All", "region_filter", true},
		{"Oceania", "region_filter", true},
		{"Europe/Asia", "region_filter", false},
		{"Europe/Asia", "region", true},
		{"All", "region", false},
		{"hour", "granularity", true},
		{"Year", "granularity", true},
		{"fortnight", "granularity", false},
		{"Europe/Berlin", "timezone", true},
		{"Mars/Olympus", "timezone", false},
	}
	for _, tt := range tests {
		err := Var(tt.value, tt.tag)
		if tt.ok {
			assert.NoError(t, err, "%s %s", tt.tag, tt.value)
		} else {
			assert.Error(t, err, "%s %s", tt.tag, tt.value)
		}
	}
}
