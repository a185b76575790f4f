package stats

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// Format abbreviates n for the live counters: exact below one thousand,
// then one decimal with a K or M suffix.
//
//	Format(999)       == "999"
//	Format(1800)      == "1.8K"
//	Format(1_800_000) == "1.8M"
func Format(n int64) string {
	switch {
	case n >= million:
		return scaled(n, million, 1) + "M"
	case n >= thousand:
		return scaled(n, thousand, 1) + "K"
	default:
		return FormatGrouped(n)
	}
}

// FormatCompact is the country list variant of Format: thousands carry no decimals.
func FormatCompact(n int64) string {
	switch {
	case n >= million:
		return scaled(n, million, 1) + "M"
	case n >= thousand:
		return scaled(n, thousand, 0) + "K"
	default:
		return FormatGrouped(n)
	}
}

// FormatLarge abbreviates yearly and global figures, adding a billions tier
// with two decimals.
func FormatLarge(n int64) string {
	switch {
	case n >= billion:
		return scaled(n, billion, 2) + "B"
	case n >= million:
		return scaled(n, million, 1) + "M"
	case n >= thousand:
		return scaled(n, thousand, 0) + "K"
	default:
		return FormatGrouped(n)
	}
}

// FormatGrouped renders n with comma thousands separators.
func FormatGrouped(n int64) string {
	return humanize.Comma(n)
}

func scaled(n int64, unit float64, decimals int) string {
	return strconv.FormatFloat(float64(n)/unit, 'f', decimals, 64)
}
