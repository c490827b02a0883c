package indicators

import "fmt"

// FormatLargeNumber renders a magnitude the way the dashboard labels it:
// billions, millions, and thousands get a unit suffix with two decimals,
// anything smaller is plain two decimals.
func FormatLargeNumber(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2f Billion", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2f Million", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2f Thousand", v/1e3)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// DisplayValue renders a cell for human-facing labels, with "n/a" standing
// in for missing values.
func DisplayValue(v Value) string {
	if !v.Valid {
		return "n/a"
	}
	return FormatLargeNumber(v.Float)
}
