package wbstats

import (
	"strings"
	"testing"
	"time"
)

func TestEndpointHosts(t *testing.T) {
	for key, ep := range Endpoints {
		want := StatisticsHost
		if strings.HasPrefix(ep.Path, "/api/v1/analytics/") {
			want = AnalyticsHost
		}
		if ep.Host != want {
			t.Errorf("Endpoints[%q].Host = %d, want %d for path %s", key, ep.Host, want, ep.Path)
		}
	}
}

func TestEndpointParams(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC)

	detail := Endpoints[ReportDetail].Params(from, to)
	if got := detail.Get("dateFrom"); got != "2026-08-01" {
		t.Errorf("report_detail dateFrom = %q, want 2026-08-01", got)
	}
	if got := detail.Get("dateTo"); got != "2026-08-07" {
		t.Errorf("report_detail dateTo = %q, want 2026-08-07", got)
	}

	sales := Endpoints[Sales].Params(from, to)
	if got := sales.Get("dateFrom"); got != from.Format(time.RFC3339) {
		t.Errorf("sales dateFrom = %q, want RFC3339 timestamp", got)
	}

	if !KnownReport(Excise) {
		t.Error("KnownReport(excise) = false, want true")
	}
	if KnownReport("not-a-report") {
		t.Error("KnownReport(not-a-report) = true, want false")
	}
}
