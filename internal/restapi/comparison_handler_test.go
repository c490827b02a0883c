package restapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard.ngindicators.org/internal/indicators"
)

func compareEndpoint(params url.Values) string {
	params.Set("key", "TEST")
	return "/api/dashboard/compare.json?" + params.Encode()
}

func TestComparisonHandlerEndToEnd(t *testing.T) {
	params := url.Values{}
	params.Set("indicator", indicators.ColGDP)
	params.Set("fromYear", "2015")
	params.Set("toYear", "2020")

	_, resp, model := serveAndRetrieveEndpoint(t, compareEndpoint(params))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryData(t, model)
	assert.Equal(t, indicators.ColGDP, entry["indicator"])
	assert.Equal(t, float64(2015), entry["fromYear"])
	assert.Equal(t, float64(2020), entry["toYear"])
	assert.InDelta(t, 4.94e11, entry["fromValue"], 1e9)
	assert.InDelta(t, 4.32e11, entry["toValue"], 1e9)
	assert.Equal(t, "494.00 Billion", entry["fromDisplay"])
	assert.Equal(t, "432.00 Billion", entry["toDisplay"])

	change, ok := entry["percentChange"].(float64)
	require.True(t, ok)
	assert.InDelta(t, -12.55, change, 0.01)
}

func TestComparisonHandlerMissingValueYieldsNullChange(t *testing.T) {
	params := url.Values{}
	params.Set("indicator", indicators.ColEmploymentRatio)
	params.Set("fromYear", "2022")
	params.Set("toYear", "2023")

	_, resp, model := serveAndRetrieveEndpoint(t, compareEndpoint(params))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryData(t, model)
	assert.NotNil(t, entry["fromValue"])
	assert.Nil(t, entry["toValue"], "substituted 2023 value should be null")
	assert.Nil(t, entry["percentChange"], "change against a missing value is undefined")
	assert.Equal(t, "n/a", entry["toDisplay"])
}

func TestComparisonHandlerValidation(t *testing.T) {
	api := createTestApi(t)

	tests := []struct {
		name   string
		params url.Values
		field  string
	}{
		{
			name: "missing fromYear",
			params: url.Values{
				"indicator": []string{indicators.ColGDP},
				"toYear":    []string{"2020"},
			},
			field: "fromYear",
		},
		{
			name: "missing toYear",
			params: url.Values{
				"indicator": []string{indicators.ColGDP},
				"fromYear":  []string{"2015"},
			},
			field: "toYear",
		},
		{
			name: "same year twice",
			params: url.Values{
				"indicator": []string{indicators.ColGDP},
				"fromYear":  []string{"2020"},
				"toYear":    []string{"2020"},
			},
			field: "toYear",
		},
		{
			name: "unknown indicator",
			params: url.Values{
				"indicator": []string{"Nope"},
				"fromYear":  []string{"2015"},
				"toYear":    []string{"2020"},
			},
			field: "indicator",
		},
		{
			name: "year not in dataset",
			params: url.Values{
				"indicator": []string{indicators.ColGDP},
				"fromYear":  []string{"1990"},
				"toYear":    []string{"2020"},
			},
			field: "indicator",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, fieldErrors := fieldErrorsFor(t, api, compareEndpoint(tt.params))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, fieldErrors, tt.field)
		})
	}
}
