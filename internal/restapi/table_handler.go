package restapi

import (
	"net/http"

	"dashboard.ngindicators.org/internal/models"
)

// tableHandler returns the full cleaned table, one row per year.
func (api *RestAPI) tableHandler(w http.ResponseWriter, r *http.Request) {
	table := api.Dataset.Table()
	response := models.NewListResponse(models.NewTableRows(table))
	api.sendResponse(w, r, response)
}
