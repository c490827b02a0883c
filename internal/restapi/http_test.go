package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"dashboard.ngindicators.org/internal/app"
	"dashboard.ngindicators.org/internal/indicators"
	"dashboard.ngindicators.org/internal/logging"
	"dashboard.ngindicators.org/internal/models"
)

// createTestApi creates a new RestAPI instance with a dataset manager
// initialized from the fixture CSV for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	datasetConfig := indicators.Config{
		DataPath: filepath.Join("../../testdata", "nigeria_indicators.csv"),
	}
	manager, err := indicators.InitManager(datasetConfig, logger)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	application := &app.Application{
		Config: app.Config{
			Env:       "test",
			ApiKeys:   []string{"TEST"},
			RateLimit: -1,
		},
		Logger:  logger,
		Dataset: manager,
	}

	return NewRestAPI(application)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// serveApiRaw makes a request and returns the raw response for endpoints
// that do not use the JSON envelope, such as the export downloads.
func serveApiRaw(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

// entryData unwraps the "entry" object from a standard response envelope.
func entryData(t *testing.T, model models.ResponseModel) map[string]interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "response data should contain an entry object")
	return entry
}

// listData unwraps the "list" array from a standard response envelope.
func listData(t *testing.T, model models.ResponseModel) []interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "response data should contain a list array")
	return list
}

// fieldErrorsFor makes a request expected to fail validation and returns the
// decoded fieldErrors map.
func fieldErrorsFor(t *testing.T, api *RestAPI, endpoint string) (*http.Response, map[string][]string) {
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var body struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body.FieldErrors
}
