package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsNilReceiverIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/x", "200", time.Millisecond)
	m.ApiInflightInc()
	m.ApiInflightDec()
	m.ObserveLLMRequest("model", "ok", time.Second, 1, 2)
	m.IncSecurityEvent("invalid_token")
	m.AddBlacklistPurged(3)
	require.Nil(t, m.Registry())

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("GET", "/blogs/blog-list", "200", 5*time.Millisecond)
	m.ObserveAPI("GET", "/blogs/blog-list", "200", 5*time.Millisecond)
	m.ObserveAPI("GET", "", "404", time.Millisecond)
	m.ObserveLLMRequest("", "error", 0, 0, 0)
	m.IncSecurityEvent("invalid_token")
	m.AddBlacklistPurged(4)
	m.AddBlacklistPurged(-1)

	require.Equal(t, 2.0, promtestutil.ToFloat64(m.apiRequests.WithLabelValues("GET", "/blogs/blog-list", "200")))
	require.Equal(t, 1.0, promtestutil.ToFloat64(m.apiRequests.WithLabelValues("GET", "unmatched", "404")))
	require.Equal(t, 1.0, promtestutil.ToFloat64(m.llmRequests.WithLabelValues("unknown", "error")))
	require.Equal(t, 1.0, promtestutil.ToFloat64(m.securityEvents.WithLabelValues("invalid_token")))
	require.Equal(t, 4.0, promtestutil.ToFloat64(m.blacklistPurged))
}

func TestMetricsHandlerExposesRegistry(t *testing.T) {
	m := NewMetrics()
	m.IncSecurityEvent("logout")

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `blogbridge_security_events_total{event="logout"} 1`)
}

func TestSampleRatioAndHeaders(t *testing.T) {
	require.Equal(t, 0.1, SampleRatio(0))
	require.Equal(t, 0.0, SampleRatio(-2))
	require.Equal(t, 1.0, SampleRatio(7))
	require.Equal(t, 0.5, SampleRatio(0.5))

	require.Nil(t, ParseHeaders(""))
	require.Nil(t, ParseHeaders("garbage, =x"))
	require.Equal(t, map[string]string{"a": "1", "b": "2=3"}, ParseHeaders("a=1, b=2=3"))
}
