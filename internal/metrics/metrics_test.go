package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetrics_Finished(t *testing.T) {
	m := NewHTTPMetrics()

	m.Started()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.inFlight))

	m.Finished(http.MethodGet, "/api/post/getPosts", http.StatusOK, 20*time.Millisecond)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.inFlight))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/post/getPosts", "200")))

	m.Started()
	m.Finished(http.MethodGet, "", http.StatusNotFound, time.Millisecond)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestHTTPMetrics_Handler(t *testing.T) {
	m := NewHTTPMetrics()
	m.Started()
	m.Finished(http.MethodPost, "/api/auth/signin", http.StatusForbidden, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `goblog_http_requests_total{method="POST",route="/api/auth/signin",status="403"} 1`)
	assert.Contains(t, body, "goblog_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}

func TestNewHTTPMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewHTTPMetrics()
		NewHTTPMetrics()
	})
}
