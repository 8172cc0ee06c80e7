package metrics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHealth_AllHealthy(t *testing.T) {
	resetHealth()
	UpdateComponent("storage", true, "")
	UpdateComponent("pool", true, "")

	health := GetHealth()
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "healthy", health.Components["storage"])
	assert.Equal(t, "healthy", health.Components["pool"])
}

func TestGetHealth_OneUnhealthy(t *testing.T) {
	resetHealth()
	UpdateComponent("storage", false, "database locked")
	UpdateComponent("pool", true, "")

	health := GetHealth()
	assert.Equal(t, "unhealthy", health.Status)
	assert.Equal(t, "unhealthy: database locked", health.Components["storage"])
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		healthy    bool
		wantStatus int
		wantBody   string
	}{
		{name: "healthy", healthy: true, wantStatus: http.StatusOK, wantBody: "healthy"},
		{name: "unhealthy", healthy: false, wantStatus: http.StatusServiceUnavailable, wantBody: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetHealth()
			SetVersion("test")
			UpdateComponent("storage", tt.healthy, "check")

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()
			NewServeMux().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var health HealthStatus
			require.NoError(t, json.NewDecoder(w.Body).Decode(&health))
			assert.Equal(t, tt.wantBody, health.Status)
			assert.Equal(t, "test", health.Version)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	OperationsMaterialized.Inc()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	NewServeMux().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "janus_operations_materialized_total")
}
