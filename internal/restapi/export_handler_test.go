package restapi

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dashboard.ngindicators.org/internal/export"
	"dashboard.ngindicators.org/internal/indicators"
)

func TestExportCSVHandler(t *testing.T) {
	api := createTestApi(t)

	resp, body := serveApiRaw(t, api, "/api/dashboard/export.csv?key=TEST&startYear=2020&endYear=2023")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="nigeria_indicators_2020_2023.csv"`,
		resp.Header.Get("Content-Disposition"))

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 5, "header plus four year rows")
	assert.Equal(t, indicators.ColYear, records[0][0])
}

func TestExportCSVHandlerDefaultsToFullDomain(t *testing.T) {
	api := createTestApi(t)

	resp, body := serveApiRaw(t, api, "/api/dashboard/export.csv?key=TEST")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="nigeria_indicators_1999_2023.csv"`,
		resp.Header.Get("Content-Disposition"))

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 26)
}

func TestExportXLSXHandler(t *testing.T) {
	api := createTestApi(t)

	resp, body := serveApiRaw(t, api, "/api/dashboard/export.xlsx?key=TEST&startYear=2015&endYear=2020")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="nigeria_indicators_2015_2020.xlsx"`,
		resp.Header.Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 7, "header plus six year rows")
}

func TestExportHandlerValidation(t *testing.T) {
	api := createTestApi(t)

	t.Run("range outside dataset domain", func(t *testing.T) {
		resp, fieldErrors := fieldErrorsFor(t, api,
			"/api/dashboard/export.csv?key=TEST&startYear=1980&endYear=2020")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, fieldErrors, "startYear")
	})

	t.Run("inverted range", func(t *testing.T) {
		resp, fieldErrors := fieldErrorsFor(t, api,
			"/api/dashboard/export.csv?key=TEST&startYear=2020&endYear=2010")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, fieldErrors, "endYear")
	})

	t.Run("requires valid api key", func(t *testing.T) {
		resp, _ := serveApiRaw(t, api, "/api/dashboard/export.csv?key=wrong")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
