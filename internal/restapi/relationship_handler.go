package restapi

import (
	"net/http"

	"dashboard.ngindicators.org/internal/indicators"
	"dashboard.ngindicators.org/internal/models"
	"dashboard.ngindicators.org/internal/utils"
)

// relationshipHandler serves the two-indicator relationship view: both
// series over the same year range, each independently min-max normalized and
// aligned by year. No correlation statistic is computed; the comparison is
// visual.
func (api *RestAPI) relationshipHandler(w http.ResponseWriter, r *http.Request) {
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

	xIndicator := params.Get("x")
	if xIndicator == "" {
		xIndicator = indicators.DefaultXIndicator
	}
	yIndicator := params.Get("y")
	if yIndicator == "" {
		yIndicator = indicators.DefaultYIndicator
	}

	if err := utils.ValidateIndicatorName(xIndicator); err != nil {
		fieldErrors["x"] = append(fieldErrors["x"], err.Error())
	}
	if err := utils.ValidateIndicatorName(yIndicator); err != nil {
		fieldErrors["y"] = append(fieldErrors["y"], err.Error())
	}
	for key, errs := range utils.ValidateYearRangeParams(start, end) {
		fieldErrors[key] = append(fieldErrors[key], errs...)
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	xSeries, ySeries, err := indicators.Relationship(table, xIndicator, yIndicator, start, end)
	if err != nil {
		api.calculatorErrorResponse(w, r, "x", err)
		return
	}

	data := models.RelationshipData{
		XIndicator: xIndicator,
		YIndicator: yIndicator,
		StartYear:  start,
		EndYear:    end,
		XSeries:    xSeries,
		YSeries:    ySeries,
	}
	api.sendResponse(w, r, models.NewEntryResponse(data))
}
