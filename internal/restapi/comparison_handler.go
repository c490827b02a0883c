package restapi

import (
	"net/http"

	"dashboard.ngindicators.org/internal/indicators"
	"dashboard.ngindicators.org/internal/models"
	"dashboard.ngindicators.org/internal/utils"
)

// comparisonHandler serves the two-year comparison view: one indicator's
// raw values at two distinct years plus the signed percent change between
// them. The change is null when either value is missing or the from value
// is zero.
func (api *RestAPI) comparisonHandler(w http.ResponseWriter, r *http.Request) {
	table := api.Dataset.Table()
	params := r.URL.Query()

	fieldErrors := make(map[string][]string)
	fromYear, fieldErrors := utils.ParseIntParam(params, "fromYear", fieldErrors)
	toYear, fieldErrors := utils.ParseIntParam(params, "toYear", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	indicator := params.Get("indicator")
	if err := utils.ValidateIndicatorName(indicator); err != nil {
		fieldErrors["indicator"] = append(fieldErrors["indicator"], err.Error())
	}
	if params.Get("fromYear") == "" {
		fieldErrors["fromYear"] = append(fieldErrors["fromYear"], "fromYear is required")
	} else if err := utils.ValidateYear(fromYear); err != nil {
		fieldErrors["fromYear"] = append(fieldErrors["fromYear"], err.Error())
	}
	if params.Get("toYear") == "" {
		fieldErrors["toYear"] = append(fieldErrors["toYear"], "toYear is required")
	} else if err := utils.ValidateYear(toYear); err != nil {
		fieldErrors["toYear"] = append(fieldErrors["toYear"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	comparison, err := indicators.CompareYears(table, indicator, fromYear, toYear)
	if err != nil {
		api.calculatorErrorResponse(w, r, "indicator", err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewComparisonData(comparison)))
}
