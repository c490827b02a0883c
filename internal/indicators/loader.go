package indicators

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// renameColumns maps the raw World Bank export headers (after trimming) to
// the canonical names used throughout the API. The raw file carries trailing
// spaces on several headers, which the loader strips before consulting this
// map.
var renameColumns = map[string]string{
	"Year":                                            ColYear,
	"Fertility Rate":                                  ColFertilityRate,
	"GDP (current US$)":                               ColGDP,
	"GDP Growth (annual %)":                           ColGDPGrowth,
	"Life Expectancy (Years)":                         ColLifeExpectancy,
	"Female Population (% Total)":                     ColFemalePopulation,
	"Male Population (% Total)":                       ColMalePopulation,
	"Population Growth (annual %)":                    ColPopulationGrowth,
	"Urban Population Growth (annual %)":              ColUrbanGrowth,
	"Rural Population Growth (annual %)":              ColRuralGrowth,
	"Employment to population ratio, 15+, total (%)":  ColEmploymentRatio,
	"Employment to population ratio, 15+, male (%)":   ColMaleEmployment,
	"Employment to population ratio, 15+, female (%)": ColFemaleEmployment,
	"Unemployment, female (% of female labor force)":  ColFemaleUnemployment,
	"Unemployment, male (% of male labor force)":      ColMaleUnemployment,
	"Unemployment, total (% of total labor force)":    ColTotalUnemployment,
}

// zeroMeansMissingYear is the one year for which a literal zero in any
// measure column is an upstream data-entry artifact standing in for "no
// figure published yet". Zeros in every other year are real values.
const zeroMeansMissingYear = 2023

// LoadTable reads and cleans the indicator dataset from a CSV file on disk.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening indicators file: %w", err)
	}
	defer f.Close()

	return ReadTable(f)
}

// ReadTable reads and cleans the indicator dataset from CSV content.
//
// Cleaning steps: headers are trimmed and renamed to the canonical set, the
// Year column is coerced to integers, every measure column is coerced to
// float64 (unparseable cells become missing), GDP is rounded out of
// scientific notation to an integer-valued float, and zeros in the 2023 row
// are replaced with missing. Rows come back sorted by ascending year.
func ReadTable(r io.Reader) (*Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Error() != nil {
		return nil, fmt.Errorf("parsing indicators CSV: %w", df.Error())
	}

	if df.Nrow() == 0 {
		return nil, fmt.Errorf("indicators CSV contains no data rows")
	}

	df, err := canonicalizeColumns(df)
	if err != nil {
		return nil, err
	}

	years, order, err := parseYearColumn(df.Col(ColYear).Records())
	if err != nil {
		return nil, err
	}

	columns := make(map[string][]Value, len(MeasureColumns))
	for _, name := range MeasureColumns {
		raw := df.Col(name).Records()
		column := make([]Value, len(order))
		for i, srcRow := range order {
			v := parseMeasure(raw[srcRow])
			if name == ColGDP && v.Valid {
				if v.Float < 0 {
					return nil, fmt.Errorf("negative GDP value %v for year %d", v.Float, years[i])
				}
				// The raw export carries GDP in scientific notation;
				// round it to a plain integer-scaled value.
				v.Float = math.Round(v.Float)
			}
			if years[i] == zeroMeansMissingYear && v.Valid && v.Float == 0 {
				v = Missing()
			}
			column[i] = v
		}
		columns[name] = column
	}

	return newTable(years, columns), nil
}

// canonicalizeColumns trims and renames the dataframe's headers and
// verifies that the full canonical column set is present.
func canonicalizeColumns(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	for _, name := range df.Names() {
		canonical, ok := renameColumns[strings.TrimSpace(name)]
		if ok && canonical != name {
			df = df.Rename(canonical, name)
			if df.Error() != nil {
				return df, fmt.Errorf("renaming column %q: %w", name, df.Error())
			}
		}
	}

	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}

	var missing []string
	for _, name := range append([]string{ColYear}, MeasureColumns...) {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return df, fmt.Errorf("indicators CSV is missing columns: %s", strings.Join(missing, ", "))
	}

	return df, nil
}

// parseYearColumn coerces the raw year cells to integers and returns the
// sorted year domain alongside the source row index for each sorted
// position. Only the last four characters of each cell are kept, which
// guards against upstream prefixes like "FY2019".
func parseYearColumn(raw []string) (years []int, order []int, err error) {
	years = make([]int, len(raw))
	order = make([]int, len(raw))
	seen := make(map[int]bool, len(raw))

	for i, cell := range raw {
		year, err := parseYear(cell)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if seen[year] {
			return nil, nil, fmt.Errorf("duplicate year %d", year)
		}
		seen[year] = true
		years[i] = year
		order[i] = i
	}

	sort.Sort(&yearSorter{years: years, order: order})
	return years, order, nil
}

func parseYear(cell string) (int, error) {
	s := strings.TrimSpace(cell)
	if len(s) > 4 {
		s = s[len(s)-4:]
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unparseable year %q", cell)
	}
	if year <= 0 {
		return 0, fmt.Errorf("year %d is not a positive integer", year)
	}
	return year, nil
}

// parseMeasure coerces one raw cell to a float64 Value. Empty and
// unparseable cells, and explicit NaNs, become missing rather than errors:
// the dataset genuinely has gaps and the views pass them through.
func parseMeasure(cell string) Value {
	s := strings.TrimSpace(cell)
	if s == "" {
		return Missing()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Missing()
	}
	return Number(f)
}

// yearSorter sorts years ascending while carrying the original row index
// along, so measure columns can be reordered to match.
type yearSorter struct {
	years []int
	order []int
}

func (s *yearSorter) Len() int           { return len(s.years) }
func (s *yearSorter) Less(i, j int) bool { return s.years[i] < s.years[j] }
func (s *yearSorter) Swap(i, j int) {
	s.years[i], s.years[j] = s.years[j], s.years[i]
	s.order[i], s.order[j] = s.order[j], s.order[i]
}
