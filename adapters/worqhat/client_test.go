package worqhat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"covidlens/domain/insight"
	"covidlens/internal/config"
)

func testClient(url string) *Client {
	return NewClient(config.OracleConfig{
		URL:        url,
		APIKey:     "test-key",
		Model:      "test-model",
		Randomness: 0.5,
		Timeout:    2 * time.Second,
	})
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}
}

func TestSummarizeSuccess(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"content":"the answer"}`)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	resp := c.Summarize(context.Background(), "any question")
	if !resp.Success {
		t.Fatal("expected a successful response")
	}
	if resp.Content != "the answer" {
		t.Errorf("content = %q", resp.Content)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization header = %q", gotAuth)
	}
}

func TestForbiddenTripsCircuitForGood(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	resp := c.Summarize(context.Background(), "critical question")
	if resp.Success {
		t.Error("403 reply should not be a success")
	}
	if c.IsAvailable() {
		t.Fatal("403 should trip the circuit")
	}

	// Tripped circuit: no further network traffic, fallback only.
	resp = c.Summarize(context.Background(), "another question")
	if resp.Success {
		t.Error("tripped circuit should serve fallback")
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("server hit %d times, want 1", n)
	}
}

func TestServerErrorDegradesSingleCall(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	resp := c.Summarize(context.Background(), "question")
	if resp.Success {
		t.Error("500 reply should degrade to fallback")
	}
	if !c.IsAvailable() {
		t.Fatal("500 must not trip the circuit")
	}

	// The next call still reaches the server.
	c.Summarize(context.Background(), "question")
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Errorf("server hit %d times, want 2", n)
	}
}

func TestTransportErrorDegradesSingleCall(t *testing.T) {
	c := testClient("http://127.0.0.1:1") // nothing listens here
	resp := c.Summarize(context.Background(), "question about global trends")
	if resp.Success {
		t.Error("transport failure should degrade to fallback")
	}
	if resp.Content != insight.FallbackGlobal {
		t.Errorf("fallback content = %q", resp.Content)
	}
	if !c.IsAvailable() {
		t.Error("transport failure must not trip the circuit")
	}
}

func TestResetCircuitReArms(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusForbidden, ""))
	c := testClient(srv.URL)
	c.Summarize(context.Background(), "q")
	srv.Close()

	if c.IsAvailable() {
		t.Fatal("circuit should be tripped")
	}
	c.ResetCircuit()
	if !c.IsAvailable() {
		t.Error("ResetCircuit should re-arm")
	}
}

func TestProbeConnectionDoesNotTouchCircuit(t *testing.T) {
	healthy := httptest.NewServer(jsonHandler(http.StatusOK, `{"content":"ok"}`))
	defer healthy.Close()
	forbidden := httptest.NewServer(jsonHandler(http.StatusForbidden, ""))
	defer forbidden.Close()

	// A failing probe on a healthy circuit leaves it closed.
	c := testClient(forbidden.URL)
	if c.ProbeConnection(context.Background()) {
		t.Error("probe against 403 should report unreachable")
	}
	if !c.IsAvailable() {
		t.Error("failed probe must not trip the circuit")
	}

	// A succeeding probe on a tripped circuit leaves it tripped.
	c.Summarize(context.Background(), "q")
	if c.IsAvailable() {
		t.Fatal("summarize against 403 should have tripped the circuit")
	}
	c.cfg.URL = healthy.URL
	if !c.ProbeConnection(context.Background()) {
		t.Error("probe against healthy server should report reachable")
	}
	if c.IsAvailable() {
		t.Error("successful probe must not re-arm the circuit")
	}
}

func TestConversationHistoryGrowsOnRealAnswersOnly(t *testing.T) {
	var lastHistory []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req oracleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		lastHistory = req.ConversationHistory
		fmt.Fprint(w, `{"content":"reply"}`)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	ctx := context.Background()

	c.Summarize(ctx, "first")
	if len(lastHistory) != 0 {
		t.Errorf("first call carried history %v, want none", lastHistory)
	}

	c.Summarize(ctx, "second")
	if len(lastHistory) != 1 || lastHistory[0] != "first: reply" {
		t.Errorf("second call history = %v", lastHistory)
	}

	// Cap: after many exchanges only the most recent ten travel.
	for i := 0; i < 15; i++ {
		c.Summarize(ctx, fmt.Sprintf("q%d", i))
	}
	c.Summarize(ctx, "final")
	if len(lastHistory) != maxHistory {
		t.Errorf("history length = %d, want %d", len(lastHistory), maxHistory)
	}
	if lastHistory[maxHistory-1] != "q14: reply" {
		t.Errorf("newest history entry = %q", lastHistory[maxHistory-1])
	}
}

func TestFallbackCallsLeaveHistoryAlone(t *testing.T) {
	var lastHistory []string
	fail := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req oracleRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		lastHistory = req.ConversationHistory
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"content":"reply"}`)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	ctx := context.Background()
	c.Summarize(ctx, "degraded call")

	fail = false
	c.Summarize(ctx, "real call")
	if len(lastHistory) != 0 {
		t.Errorf("degraded call leaked into history: %v", lastHistory)
	}
}

func TestExtractContentEnvelopes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"content field", `{"content":"a"}`, "a"},
		{"response field", `{"response":"b"}`, "b"},
		{"nested data", `{"data":{"content":"c"}}`, "c"},
		{"chat choices", `{"choices":[{"message":{"content":"d"}}]}`, "d"},
		{"bare JSON string", `"just text"`, "just text"},
		{"unrecognized shape", `{"weird":true}`, `{"weird":true}`},
		{"content wins over response", `{"response":"late","content":"early"}`, "early"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractContent([]byte(tt.payload)); got != tt.want {
				t.Errorf("extractContent(%s) = %q, want %q", tt.payload, got, tt.want)
			}
		})
	}
}
