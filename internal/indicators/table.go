package indicators

import (
	"encoding/json"
	"fmt"
)

// Canonical column names for the cleaned table. Every consumer of the
// dataset — handlers, calculators, exports — uses these, never the raw
// World Bank headers.
const (
	ColYear               = "Year"
	ColFertilityRate      = "Fertility Rate"
	ColGDP                = "GDP (US$)"
	ColGDPGrowth          = "GDP Growth (%)"
	ColLifeExpectancy     = "Life Expectancy"
	ColFemalePopulation   = "Female Population (%)"
	ColMalePopulation     = "Male Population (%)"
	ColPopulationGrowth   = "Population Growth"
	ColUrbanGrowth        = "Urban Growth (%)"
	ColRuralGrowth        = "Rural Growth (%)"
	ColEmploymentRatio    = "Employment Ratio (%)"
	ColMaleEmployment     = "Male Employment (%)"
	ColFemaleEmployment   = "Female Employment (%)"
	ColFemaleUnemployment = "Female Unemployment (%)"
	ColMaleUnemployment   = "Male Unemployment (%)"
	ColTotalUnemployment  = "Total Unemployment (%)"
)

// MeasureColumns lists every canonical column except Year, in display order.
var MeasureColumns = []string{
	ColFertilityRate,
	ColGDP,
	ColGDPGrowth,
	ColLifeExpectancy,
	ColFemalePopulation,
	ColMalePopulation,
	ColPopulationGrowth,
	ColUrbanGrowth,
	ColRuralGrowth,
	ColEmploymentRatio,
	ColMaleEmployment,
	ColFemaleEmployment,
	ColFemaleUnemployment,
	ColMaleUnemployment,
	ColTotalUnemployment,
}

// Value is a single measure cell. Valid is false when the source had no
// usable number for that year; missing values marshal as JSON null.
type Value struct {
	Float float64
	Valid bool
}

// Number returns a present Value.
func Number(f float64) Value {
	return Value{Float: f, Valid: true}
}

// Missing returns an absent Value.
func Missing() Value {
	return Value{}
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Float)
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Value{}
		return nil
	}
	if err := json.Unmarshal(b, &v.Float); err != nil {
		return err
	}
	v.Valid = true
	return nil
}

// Table is the cleaned indicator dataset: one row per year, sorted by
// ascending year, with a fixed set of measure columns. It is immutable
// after construction, so it is safe to share across goroutines without
// locking.
type Table struct {
	years     []int
	yearIndex map[int]int
	columns   map[string][]Value
}

func newTable(years []int, columns map[string][]Value) *Table {
	index := make(map[int]int, len(years))
	for i, y := range years {
		index[y] = i
	}
	return &Table{years: years, yearIndex: index, columns: columns}
}

// Years returns the year domain in ascending order.
func (t *Table) Years() []int {
	years := make([]int, len(t.years))
	copy(years, t.years)
	return years
}

// NumRows returns the number of year rows in the table.
func (t *Table) NumRows() int {
	return len(t.years)
}

// MinYear returns the earliest year in the table.
func (t *Table) MinYear() int {
	return t.years[0]
}

// MaxYear returns the latest year in the table.
func (t *Table) MaxYear() int {
	return t.years[len(t.years)-1]
}

// HasYear reports whether the given year is present in the table.
func (t *Table) HasYear(year int) bool {
	_, ok := t.yearIndex[year]
	return ok
}

// HasIndicator reports whether the given canonical measure name exists.
func (t *Table) HasIndicator(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Indicators returns the canonical measure names in display order.
func (t *Table) Indicators() []string {
	names := make([]string, len(MeasureColumns))
	copy(names, MeasureColumns)
	return names
}

// Value returns the cell for the given measure and year.
func (t *Table) Value(indicator string, year int) (Value, error) {
	column, ok := t.columns[indicator]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownIndicator, indicator)
	}
	i, ok := t.yearIndex[year]
	if !ok {
		return Value{}, fmt.Errorf("%w: %d", ErrYearOutOfRange, year)
	}
	return column[i], nil
}

// Series returns the full column for the given measure, ordered by year.
func (t *Table) Series(indicator string) ([]Value, error) {
	column, ok := t.columns[indicator]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, indicator)
	}
	values := make([]Value, len(column))
	copy(values, column)
	return values, nil
}
