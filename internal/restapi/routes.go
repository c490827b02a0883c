package restapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	protected := func(h handlerFunc) http.Handler {
		return api.rateLimiter(validateAPIKey(api, h))
	}

	mux.Handle("GET /api/dashboard/indicators.json", protected(api.indicatorsHandler))
	mux.Handle("GET /api/dashboard/table.json", protected(api.tableHandler))
	mux.Handle("GET /api/dashboard/trend.json", protected(api.trendHandler))
	mux.Handle("GET /api/dashboard/compare.json", protected(api.comparisonHandler))
	mux.Handle("GET /api/dashboard/relationship.json", protected(api.relationshipHandler))
	mux.Handle("GET /api/dashboard/export.xlsx", protected(api.exportXLSXHandler))
	mux.Handle("GET /api/dashboard/export.csv", protected(api.exportCSVHandler))
	mux.Handle("GET /metrics", promhttp.Handler())
}
