package models

import "dashboard.ngindicators.org/internal/indicators"

// DatasetInfo describes the loaded dataset: the selectable indicators, the
// year domain, and the relationship view's default axes.
type DatasetInfo struct {
	Indicators        []string `json:"indicators"`
	MinYear           int      `json:"minYear"`
	MaxYear           int      `json:"maxYear"`
	DefaultXIndicator string   `json:"defaultXIndicator"`
	DefaultYIndicator string   `json:"defaultYIndicator"`
}

// TableRow is one year of the cleaned table.
type TableRow struct {
	Year   int                         `json:"year"`
	Values map[string]indicators.Value `json:"values"`
}

// TrendSeries is one indicator's points over a year range.
type TrendSeries struct {
	Indicator string             `json:"indicator"`
	Points    []indicators.Point `json:"points"`
}

// TrendData is the trend view payload: one or more series over a shared
// range, optionally min-max normalized.
type TrendData struct {
	StartYear  int           `json:"startYear"`
	EndYear    int           `json:"endYear"`
	Normalized bool          `json:"normalized"`
	Series     []TrendSeries `json:"series"`
}

// ComparisonData is the two-year comparison payload. The display fields
// carry human-readable renderings ("2.43 Billion") for metric labels, and
// percentChange is null when undefined.
type ComparisonData struct {
	Indicator     string           `json:"indicator"`
	FromYear      int              `json:"fromYear"`
	ToYear        int              `json:"toYear"`
	FromValue     indicators.Value `json:"fromValue"`
	ToValue       indicators.Value `json:"toValue"`
	FromDisplay   string           `json:"fromDisplay"`
	ToDisplay     string           `json:"toDisplay"`
	PercentChange indicators.Value `json:"percentChange"`
}

// RelationshipData is the normalized two-indicator relationship payload.
type RelationshipData struct {
	XIndicator string             `json:"xIndicator"`
	YIndicator string             `json:"yIndicator"`
	StartYear  int                `json:"startYear"`
	EndYear    int                `json:"endYear"`
	XSeries    []indicators.Point `json:"xSeries"`
	YSeries    []indicators.Point `json:"ySeries"`
}

// NewDatasetInfo builds the dataset description from the cleaned table.
func NewDatasetInfo(table *indicators.Table) DatasetInfo {
	return DatasetInfo{
		Indicators:        table.Indicators(),
		MinYear:           table.MinYear(),
		MaxYear:           table.MaxYear(),
		DefaultXIndicator: indicators.DefaultXIndicator,
		DefaultYIndicator: indicators.DefaultYIndicator,
	}
}

// NewTableRows flattens the cleaned table into year-keyed rows.
func NewTableRows(table *indicators.Table) []TableRow {
	rows := make([]TableRow, 0, table.NumRows())
	for _, year := range table.Years() {
		values := make(map[string]indicators.Value, len(indicators.MeasureColumns))
		for _, name := range table.Indicators() {
			v, err := table.Value(name, year)
			if err != nil {
				continue
			}
			values[name] = v
		}
		rows = append(rows, TableRow{Year: year, Values: values})
	}
	return rows
}

// NewComparisonData builds the comparison payload from a calculator result.
func NewComparisonData(c indicators.Comparison) ComparisonData {
	return ComparisonData{
		Indicator:     c.Indicator,
		FromYear:      c.FromYear,
		ToYear:        c.ToYear,
		FromValue:     c.FromValue,
		ToValue:       c.ToValue,
		FromDisplay:   indicators.DisplayValue(c.FromValue),
		ToDisplay:     indicators.DisplayValue(c.ToValue),
		PercentChange: c.PercentChange,
	}
}
