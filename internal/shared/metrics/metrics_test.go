package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(analysisCompletedTotal)
	IncAnalysisCompleted()
	if got := testutil.ToFloat64(analysisCompletedTotal); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}

	missBefore := testutil.ToFloat64(cacheRequestsTotal.WithLabelValues("miss"))
	IncCache("miss")
	if got := testutil.ToFloat64(cacheRequestsTotal.WithLabelValues("miss")); got != missBefore+1 {
		t.Fatalf("expected %v, got %v", missBefore+1, got)
	}
}

func TestHTTPRouteFallback(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
	ObserveHTTPRequest("GET", "", http.StatusNotFound, time.Millisecond)
	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unmatched", "404")); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncAnalysisStarted()
	ObserveAnalysisDuration(2 * time.Millisecond)

	r := gin.New()
	r.GET("/metrics", Handler())
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, name := range []string{"analysis_started_total", "analysis_duration_seconds_bucket"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}
