package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"code.vegaprotocol.io/rgbwallet/logging"
	"code.vegaprotocol.io/rgbwallet/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Run("Setting up twice is harmless", testSettingUpTwiceIsHarmless)
	t.Run("Recorded requests are exposed", testRecordedRequestsAreExposed)
	t.Run("Health probe answers", testHealthProbeAnswers)
}

func TestConfigValidation(t *testing.T) {
	cfg := metrics.NewDefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Enabled = true
	assert.NoError(t, cfg.Validate())

	cfg.Port = 0
	assert.ErrorIs(t, cfg.Validate(), metrics.ErrInvalidPort)

	cfg.Port = 2112
	cfg.Path = "metrics"
	assert.ErrorIs(t, cfg.Validate(), metrics.ErrInvalidPath)
}

func testSettingUpTwiceIsHarmless(t *testing.T) {
	require.NoError(t, metrics.Setup())
	require.NoError(t, metrics.Setup())
}

func testRecordedRequestsAreExposed(t *testing.T) {
	// setup
	srv, err := metrics.NewServer(logging.NewTestLogger(), metrics.NewDefaultConfig())
	require.NoError(t, err)

	// when
	metrics.APIRequestAndTime("/wallet/address", http.MethodGet, http.StatusOK, 15*time.Millisecond)
	metrics.BackendErrorInc("online")

	// then
	expected := `
# HELP rgbwallet_backend_errors_total Number of failures returned by the RGB node
# TYPE rgbwallet_backend_errors_total counter
rgbwallet_backend_errors_total{kind="online"} 1
`
	require.NoError(t, testutil.GatherAndCompare(metrics.Registry(), strings.NewReader(expected), "rgbwallet_backend_errors_total"))

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `rgbwallet_api_requests_total{method="GET",route="/wallet/address",status="200"} 1`)
}

func testHealthProbeAnswers(t *testing.T) {
	// setup
	srv, err := metrics.NewServer(logging.NewTestLogger(), metrics.NewDefaultConfig())
	require.NoError(t, err)

	// when
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	// then
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}
