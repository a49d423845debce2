package delivery_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"katana_store/config"
	"katana_store/internal/delivery"

	"github.com/stretchr/testify/require"
)

func TestDiagnosticsHandler(t *testing.T) {
	t.Run("Root_ReturnsLivenessMessage", func(t *testing.T) {
		handler := delivery.NewDiagnosticsHandler(nil, &config.Config{}, testLogger())
		router := setupRouter(handler)

		rec := doJSON(t, router, http.MethodGet, "/", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message": "Katana Store Backend is running"}`, rec.Body.String())
	})

	t.Run("TestDatabase_NeverFailsWithoutADatabase", func(t *testing.T) {
		cfg := &config.Config{
			DatabaseURL:  "mongodb://localhost:27017",
			DatabaseName: "katana_store",
		}
		handler := delivery.NewDiagnosticsHandler(nil, cfg, testLogger())
		router := setupRouter(handler)

		rec := doJSON(t, router, http.MethodGet, "/test", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "✅ Running", body["backend"])
		require.Equal(t, "❌ Not Available", body["database"])
		require.Equal(t, "✅ Set", body["database_url"])
		require.Equal(t, "✅ Set", body["database_name"])
		require.Equal(t, "Not Connected", body["connection_status"])
		require.Empty(t, body["collections"])
	})

	t.Run("TestDatabase_ReportsMissingConfiguration", func(t *testing.T) {
		handler := delivery.NewDiagnosticsHandler(nil, &config.Config{}, testLogger())
		router := setupRouter(handler)

		rec := doJSON(t, router, http.MethodGet, "/test", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "❌ Not Set", body["database_url"])
		require.Equal(t, "❌ Not Set", body["database_name"])
	})
}
