package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestMetricsExposure(t *testing.T) {
	PagesFetched.Inc()
	FetchErrors.Inc()
	PostsProcessed.Inc()
	RepliesSubmitted.Inc()
	CheckErrors.Inc()
	ReplyErrors.Inc()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, m := range []string{
		"licensebot_pages_fetched_total",
		"licensebot_fetch_errors_total",
		"licensebot_posts_processed_total",
		"licensebot_replies_submitted_total",
		"licensebot_check_errors_total",
		"licensebot_reply_errors_total",
	} {
		if !strings.Contains(body, m) {
			t.Fatalf("expected metric %s in body", m)
		}
	}
}
