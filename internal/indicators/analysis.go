package indicators

import (
	"errors"
	"fmt"
)

// Errors returned by the view calculators. Handlers map these to
// field-level validation failures rather than server errors.
var (
	ErrUnknownIndicator = errors.New("unknown indicator")
	ErrYearOutOfRange   = errors.New("year outside the dataset's domain")
	ErrInvertedRange    = errors.New("start year after end year")
	ErrSameYear         = errors.New("comparison years must differ")
)

// Default axis selections for the relationship view.
const (
	DefaultXIndicator = ColGDP
	DefaultYIndicator = ColPopulationGrowth
)

// Point is one (year, value) sample of an indicator series.
type Point struct {
	Year  int   `json:"year"`
	Value Value `json:"value"`
}

// Comparison holds one indicator's values at two years plus the signed
// percent change between them.
type Comparison struct {
	Indicator     string
	FromYear      int
	ToYear        int
	FromValue     Value
	ToValue       Value
	PercentChange Value
}

// Trend returns the ordered (year, value) points of one indicator within
// the inclusive range [start, end]. Missing values are passed through, not
// imputed. The result is a fresh slice on every call.
func Trend(t *Table, indicator string, start, end int) ([]Point, error) {
	if err := checkRange(t, start, end); err != nil {
		return nil, err
	}
	column, ok := t.columns[indicator]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, indicator)
	}

	var points []Point
	for i, year := range t.years {
		if year < start || year > end {
			continue
		}
		points = append(points, Point{Year: year, Value: column[i]})
	}
	return points, nil
}

// NormalizedTrend is Trend followed by min-max normalization over the
// selected range.
func NormalizedTrend(t *Table, indicator string, start, end int) ([]Point, error) {
	points, err := Trend(t, indicator, start, end)
	if err != nil {
		return nil, err
	}
	return NormalizeSeries(points), nil
}

// NormalizeSeries rescales the non-missing values of a series to [0, 1] via
// (v - min) / (max - min), so the minimum maps to 0 and the maximum to 1.
// Missing points stay missing. For a constant series the rescaling is
// undefined; the chosen policy is to map every non-missing point to 0.
func NormalizeSeries(points []Point) []Point {
	min, max, any := seriesBounds(points)

	normalized := make([]Point, len(points))
	for i, p := range points {
		normalized[i] = p
		if !p.Value.Valid || !any {
			continue
		}
		if max == min {
			normalized[i].Value = Number(0)
			continue
		}
		normalized[i].Value = Number((p.Value.Float - min) / (max - min))
	}
	return normalized
}

// CompareYears returns one indicator's raw values at two distinct years and
// the percent change (to - from) / from * 100. When either value is missing
// or the from value is zero, the change is undefined and reported as
// missing; it is never computed by dividing by zero.
func CompareYears(t *Table, indicator string, fromYear, toYear int) (Comparison, error) {
	if fromYear == toYear {
		return Comparison{}, fmt.Errorf("%w: %d", ErrSameYear, fromYear)
	}
	for _, year := range []int{fromYear, toYear} {
		if !t.HasYear(year) {
			return Comparison{}, fmt.Errorf("%w: %d", ErrYearOutOfRange, year)
		}
	}

	from, err := t.Value(indicator, fromYear)
	if err != nil {
		return Comparison{}, err
	}
	to, err := t.Value(indicator, toYear)
	if err != nil {
		return Comparison{}, err
	}

	change := Missing()
	if from.Valid && to.Valid && from.Float != 0 {
		change = Number((to.Float - from.Float) / from.Float * 100)
	}

	return Comparison{
		Indicator:     indicator,
		FromYear:      fromYear,
		ToYear:        toYear,
		FromValue:     from,
		ToValue:       to,
		PercentChange: change,
	}, nil
}

// Relationship returns two indicators' series over the same year range,
// each independently min-max normalized and aligned by year.
func Relationship(t *Table, xIndicator, yIndicator string, start, end int) (x, y []Point, err error) {
	x, err = NormalizedTrend(t, xIndicator, start, end)
	if err != nil {
		return nil, nil, err
	}
	y, err = NormalizedTrend(t, yIndicator, start, end)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func checkRange(t *Table, start, end int) error {
	if start > end {
		return fmt.Errorf("%w: %d > %d", ErrInvertedRange, start, end)
	}
	if start < t.MinYear() || end > t.MaxYear() {
		return fmt.Errorf("%w: [%d, %d] not within [%d, %d]",
			ErrYearOutOfRange, start, end, t.MinYear(), t.MaxYear())
	}
	return nil
}

func seriesBounds(points []Point) (min, max float64, any bool) {
	for _, p := range points {
		if !p.Value.Valid {
			continue
		}
		if !any || p.Value.Float < min {
			min = p.Value.Float
		}
		if !any || p.Value.Float > max {
			max = p.Value.Float
		}
		any = true
	}
	return min, max, any
}
