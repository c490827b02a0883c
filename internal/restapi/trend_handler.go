package restapi

import (
	"net/http"

	"dashboard.ngindicators.org/internal/indicators"
	"dashboard.ngindicators.org/internal/models"
	"dashboard.ngindicators.org/internal/utils"
)

// trendHandler serves the time-series trend view. A single indicator comes
// back raw by default; multiple indicators (comma-separated "indicators"
// parameter) are each min-max normalized over the shared range so they can
// be drawn on one axis. The year range defaults to the table's full domain.
func (api *RestAPI) trendHandler(w http.ResponseWriter, r *http.Request) {
	table := api.Dataset.Table()
	params := r.URL.Query()

	fieldErrors := make(map[string][]string)
	start, fieldErrors := utils.ParseIntParam(params, "startYear", fieldErrors)
	end, fieldErrors := utils.ParseIntParam(params, "endYear", fieldErrors)

	names := utils.SplitListParam(params.Get("indicators"))
	multi := len(names) > 0
	if !multi {
		names = []string{params.Get("indicator")}
	}

	normalize, fieldErrors := utils.ParseBoolParam(params, "normalize", multi, fieldErrors)
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

	for _, name := range names {
		if err := utils.ValidateIndicatorName(name); err != nil {
			fieldErrors["indicator"] = append(fieldErrors["indicator"], err.Error())
		}
	}
	for key, errs := range utils.ValidateYearRangeParams(start, end) {
		fieldErrors[key] = append(fieldErrors[key], errs...)
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	data := models.TrendData{
		StartYear:  start,
		EndYear:    end,
		Normalized: normalize,
	}
	for _, name := range names {
		var points []indicators.Point
		var err error
		if normalize {
			points, err = indicators.NormalizedTrend(table, name, start, end)
		} else {
			points, err = indicators.Trend(table, name, start, end)
		}
		if err != nil {
			api.calculatorErrorResponse(w, r, "indicator", err)
			return
		}
		data.Series = append(data.Series, models.TrendSeries{Indicator: name, Points: points})
	}

	api.sendResponse(w, r, models.NewEntryResponse(data))
}
