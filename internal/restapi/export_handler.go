package restapi

import (
	"fmt"
	"io"
	"net/http"

	"dashboard.ngindicators.org/internal/export"
	"dashboard.ngindicators.org/internal/indicators"
	"dashboard.ngindicators.org/internal/utils"
)

// exportXLSXHandler downloads the cleaned table as an xlsx workbook,
// optionally limited to a year range.
func (api *RestAPI) exportXLSXHandler(w http.ResponseWriter, r *http.Request) {
	api.exportHandler(w, r, "xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		export.WriteXLSX)
}

// exportCSVHandler downloads the cleaned table as CSV, optionally limited
// to a year range.
func (api *RestAPI) exportCSVHandler(w http.ResponseWriter, r *http.Request) {
	api.exportHandler(w, r, "csv", "text/csv; charset=utf-8", export.WriteCSV)
}

func (api *RestAPI) exportHandler(
	w http.ResponseWriter,
	r *http.Request,
	extension string,
	contentType string,
	write func(w io.Writer, table *indicators.Table, start, end int) error,
) {
	table := api.Dataset.Table()
	params := r.URL.Query()

	fieldErrors := make(map[string][]string)
	start, fieldErrors := utils.ParseIntParam(params, "startYear", fieldErrors)
	end, fieldErrors := utils.ParseIntParam(params, "endYear", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if params.Get("startYear") == "" {
		start = table.MinYear()
	}
	if params.Get("endYear") == "" {
		end = table.MaxYear()
	}

	if errs := utils.ValidateYearRangeParams(start, end); len(errs) > 0 {
		api.validationErrorResponse(w, r, errs)
		return
	}
	if start < table.MinYear() || end > table.MaxYear() {
		api.validationErrorResponse(w, r, map[string][]string{
			"startYear": {fmt.Sprintf("range must fall within [%d, %d]", table.MinYear(), table.MaxYear())},
		})
		return
	}

	filename := fmt.Sprintf("nigeria_indicators_%d_%d.%s", start, end, extension)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := write(w, table, start, end); err != nil {
		// Headers are already out; all that is left is to log it.
		api.Logger.Error("failed to write export", "format", extension, "error", err)
	}
}
