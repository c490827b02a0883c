package restapi

import (
	"net/http"

	"dashboard.ngindicators.org/internal/models"
)

// indicatorsHandler describes the loaded dataset: the selectable indicator
// names, the year domain, and the relationship view's default axes.
func (api *RestAPI) indicatorsHandler(w http.ResponseWriter, r *http.Request) {
	table := api.Dataset.Table()
	response := models.NewEntryResponse(models.NewDatasetInfo(table))
	api.sendResponse(w, r, response)
}
