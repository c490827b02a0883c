package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard.ngindicators.org/internal/indicators"
)

func TestIndicatorsHandlerRequiresValidApiKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/dashboard/indicators.json?key=invalid")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, model.Code)
	assert.Equal(t, "permission denied", model.Text)
}

func TestIndicatorsHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/dashboard/indicators.json?key=TEST")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 2, model.Version)

	entry := entryData(t, model)
	assert.Equal(t, float64(1999), entry["minYear"])
	assert.Equal(t, float64(2023), entry["maxYear"])
	assert.Equal(t, indicators.DefaultXIndicator, entry["defaultXIndicator"])
	assert.Equal(t, indicators.DefaultYIndicator, entry["defaultYIndicator"])

	names, ok := entry["indicators"].([]interface{})
	require.True(t, ok)
	assert.Len(t, names, len(indicators.MeasureColumns))
	assert.Contains(t, names, indicators.ColGDP)
	assert.Contains(t, names, indicators.ColPopulationGrowth)
}
