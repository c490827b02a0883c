// Package export renders the cleaned indicator table as downloadable
// spreadsheet and CSV documents.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"

	"dashboard.ngindicators.org/internal/indicators"
)

// SheetName is the worksheet the xlsx export writes into.
const SheetName = "Nigeria Indicators"

// WriteXLSX writes the table rows with start <= Year <= end as an xlsx
// workbook. Missing values become empty cells.
func WriteXLSX(w io.Writer, table *indicators.Table, start, end int) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("creating worksheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default worksheet: %w", err)
	}

	headers := append([]string{indicators.ColYear}, table.Indicators()...)
	for i, name := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return err
		}
	}

	row := 2
	for _, year := range table.Years() {
		if year < start || year > end {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, year); err != nil {
			return err
		}

		for col, name := range table.Indicators() {
			v, err := table.Value(name, year)
			if err != nil {
				return err
			}
			if !v.Valid {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+2, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, v.Float); err != nil {
				return err
			}
		}
		row++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteCSV writes the table rows with start <= Year <= end as CSV. Missing
// values become empty fields. GDP is rendered without an exponent so the
// export never reintroduces scientific notation.
func WriteCSV(w io.Writer, table *indicators.Table, start, end int) error {
	var years []string
	for _, year := range table.Years() {
		if year < start || year > end {
			continue
		}
		years = append(years, strconv.Itoa(year))
	}

	columns := make([]series.Series, 0, len(table.Indicators())+1)
	columns = append(columns, series.New(years, series.String, indicators.ColYear))

	for _, name := range table.Indicators() {
		cells := make([]string, 0, len(years))
		for _, year := range table.Years() {
			if year < start || year > end {
				continue
			}
			v, err := table.Value(name, year)
			if err != nil {
				return err
			}
			cells = append(cells, formatCell(v))
		}
		columns = append(columns, series.New(cells, series.String, name))
	}

	df := dataframe.New(columns...)
	if df.Error() != nil {
		return fmt.Errorf("assembling export frame: %w", df.Error())
	}

	if err := df.WriteCSV(w, dataframe.WriteHeader(true)); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

func formatCell(v indicators.Value) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float, 'f', -1, 64)
}
