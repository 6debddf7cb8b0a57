package diseasesh

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"covidlens/internal/config"
	"covidlens/internal/errors"
)

func testClient(baseURL string) *Client {
	return NewClient(config.FeedConfig{BaseURL: baseURL, Timeout: 2 * time.Second})
}

func TestGetAllCountries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/countries" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"country":"Utopia","continent":"Europe","cases":100,"deaths":2,"deathsPerOneMillion":12.5,"countryInfo":{"iso2":"UT","flag":"https://flags/ut.png"}},
			{"country":"Dystopia","continent":"Asia","cases":5000}
		]`)
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).GetAllCountries(context.Background())
	if err != nil {
		t.Fatalf("GetAllCountries: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Country != "Utopia" || got[0].DeathsPerOneMillion != 12.5 {
		t.Errorf("first record = %+v", got[0])
	}
	if got[0].CountryInfo.Flag != "https://flags/ut.png" {
		t.Errorf("flag = %q", got[0].CountryInfo.Flag)
	}
}

func TestGetCountryEscapesName(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"country":"Congo (Brazzaville)","cases":7}`)
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).GetCountry(context.Background(), "Congo (Brazzaville)")
	if err != nil {
		t.Fatalf("GetCountry: %v", err)
	}
	if got.Country != "Congo (Brazzaville)" || got.Cases != 7 {
		t.Errorf("record = %+v", got)
	}
	if gotPath != "/countries/Congo%20%28Brazzaville%29" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestGetHistoricalDataWindow(t *testing.T) {
	var gotLastdays string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLastdays = r.URL.Query().Get("lastdays")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"country":"Utopia","timeline":{"cases":{"1/1/21":10,"1/2/21":15}}}`)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	got, err := c.GetHistoricalData(context.Background(), "Utopia", 90)
	if err != nil {
		t.Fatalf("GetHistoricalData: %v", err)
	}
	if gotLastdays != "90" {
		t.Errorf("lastdays = %q, want 90", gotLastdays)
	}
	if got.Timeline.Cases["1/2/21"] != 15 {
		t.Errorf("timeline = %+v", got.Timeline)
	}

	// A non-positive window falls back to 30 days.
	if _, err := c.GetHistoricalData(context.Background(), "Utopia", 0); err != nil {
		t.Fatalf("GetHistoricalData: %v", err)
	}
	if gotLastdays != "30" {
		t.Errorf("lastdays = %q, want 30 for a zero window", gotLastdays)
	}
}

func TestGetGlobalStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/all" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"cases":700000000,"deaths":7000000,"affectedCountries":231}`)
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).GetGlobalStats(context.Background())
	if err != nil {
		t.Fatalf("GetGlobalStats: %v", err)
	}
	if got.Cases != 700_000_000 || got.AffectedCountries != 231 {
		t.Errorf("global = %+v", got)
	}
}

func TestFeedErrorsCarryCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	if _, err := c.GetAllCountries(context.Background()); !errors.IsCode(err, errors.CodeFeedUnavailable) {
		t.Errorf("GetAllCountries error = %v, want feed-unavailable code", err)
	}
	if _, err := c.GetCountry(context.Background(), "Utopia"); !errors.IsCode(err, errors.CodeFeedUnavailable) {
		t.Errorf("GetCountry error = %v, want feed-unavailable code", err)
	}
	if _, err := c.GetGlobalStats(context.Background()); !errors.IsCode(err, errors.CodeFeedUnavailable) {
		t.Errorf("GetGlobalStats error = %v, want feed-unavailable code", err)
	}
}
