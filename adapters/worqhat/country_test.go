package worqhat

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"covidlens/domain/covid"
	"covidlens/domain/insight"
	"covidlens/domain/metrics"
)

func structuredReply(analysis, keyMetrics, recs string) string {
	return fmt.Sprintf("ANALYSIS: %s\nKEY_METRICS: %s\nRECOMMENDATIONS: %s", analysis, keyMetrics, recs)
}

func TestAnalyzeCountryParsesStructuredReply(t *testing.T) {
	reply := structuredReply(
		"Situation is stable.",
		"metric one | metric two | metric three | metric four",
		"rec one | rec two",
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"content":%q}`, reply)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	got := c.AnalyzeCountry(context.Background(), covid.CountryRecord{Country: "Utopia"})

	if got.Country != "Utopia" {
		t.Errorf("country = %q", got.Country)
	}
	if got.Analysis != "Situation is stable." {
		t.Errorf("analysis = %q", got.Analysis)
	}
	// Pipe lists cap at three entries.
	if len(got.KeyMetrics) != 3 || got.KeyMetrics[2] != "metric three" {
		t.Errorf("key metrics = %v", got.KeyMetrics)
	}
	if len(got.Recommendations) != 2 || got.Recommendations[0] != "rec one" {
		t.Errorf("recommendations = %v", got.Recommendations)
	}
	if got.RiskLevel != metrics.RiskLow {
		t.Errorf("risk = %q, want %q for a zero record", got.RiskLevel, metrics.RiskLow)
	}
}

func TestAnalyzeCountryRiskIsLocalEvenOnSuccess(t *testing.T) {
	reply := structuredReply("Bad.", "a | b | c", "x | y")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"content":%q}`, reply)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	record := covid.CountryRecord{Country: "Dystopia", ActivePerOneMillion: 6000}
	got := c.AnalyzeCountry(context.Background(), record)
	if got.RiskLevel != metrics.RiskCritical {
		t.Errorf("risk = %q, want %q from the local threshold scale", got.RiskLevel, metrics.RiskCritical)
	}
}

func TestAnalyzeCountryMissingSectionFallsBack(t *testing.T) {
	// KEY_METRICS absent: the whole reply is rejected, not partially used.
	reply := "ANALYSIS: Something.\nRECOMMENDATIONS: rec one | rec two"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"content":%q}`, reply)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	got := c.AnalyzeCountry(context.Background(), covid.CountryRecord{Country: "Utopia", Cases: 1234})

	if got.Analysis != insight.FallbackAnalysis("Low") {
		t.Errorf("analysis = %q, want the low-risk fallback text", got.Analysis)
	}
	if len(got.Recommendations) != 3 {
		t.Errorf("fallback should carry three recommendations, got %v", got.Recommendations)
	}
	if !strings.Contains(got.KeyMetrics[0], "1,234 total cases") {
		t.Errorf("first key metric = %q", got.KeyMetrics[0])
	}
}

func TestAnalyzeCountryTrippedCircuitSkipsNetwork(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.Summarize(context.Background(), "trip it")
	got := c.AnalyzeCountry(context.Background(), covid.CountryRecord{Country: "Utopia"})

	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}
	if got.Country != "Utopia" || len(got.Recommendations) != 3 {
		t.Errorf("fallback insight = %+v", got)
	}
}

func TestGenerateGlobalInsightsTrippedCircuit(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusForbidden, ""))
	c := testClient(srv.URL)
	c.Summarize(context.Background(), "trip it")
	srv.Close()

	got := c.GenerateGlobalInsights(context.Background(), nil)
	if got != insight.FallbackGlobal {
		t.Errorf("tripped-circuit global insight = %q", got)
	}
}

func TestGenerateGlobalInsightsPrompt(t *testing.T) {
	var question string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		question = string(body)
		fmt.Fprint(w, `{"content":"global summary"}`)
	}))
	defer srv.Close()

	countries := []covid.CountryRecord{
		{Country: "A", Cases: 1000, Deaths: 10, Recovered: 900},
		{Country: "B", Cases: 2000, Deaths: 20, Recovered: 1800},
	}
	c := testClient(srv.URL)
	got := c.GenerateGlobalInsights(context.Background(), countries)

	if got != "global summary" {
		t.Errorf("insight = %q", got)
	}
	if !strings.Contains(question, "Total Cases: 3,000") {
		t.Errorf("prompt missing totals: %s", question)
	}
	if !strings.Contains(question, "B (2,000), A (1,000)") {
		t.Errorf("prompt missing top countries in case order: %s", question)
	}
}

func TestParseStructuredReply(t *testing.T) {
	tests := []struct {
		name    string
		content string
		ok      bool
	}{
		{"complete", structuredReply("a", "m1 | m2", "r1"), true},
		{"missing analysis", "KEY_METRICS: m\nRECOMMENDATIONS: r", false},
		{"empty analysis", structuredReply("", "m", "r"), false},
		{"empty metrics list", structuredReply("a", " | | ", "r"), false},
		{"free text", "The model ignored the format.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, ok := parseStructuredReply(tt.content)
			if ok != tt.ok {
				t.Errorf("parseStructuredReply ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}

func TestSplitPipeList(t *testing.T) {
	got := splitPipeList(" a | | b |c| d ", 3)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("splitPipeList = %v", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45678, "-45,678"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
