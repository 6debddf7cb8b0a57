package app

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"covidlens/domain/covid"
	"covidlens/internal/errors"
)

// GlobalOverview is the worldwide snapshot served by the overview endpoint
type GlobalOverview struct {
	Global             *covid.GlobalStats    `json:"global"`
	TopCountries       []covid.CountryRecord `json:"topCountries"`
	CountriesReporting int                   `json:"countriesReporting"`
	Insight            string                `json:"insight"`
}

// PopulationCategory is one population-size bucket with summed counts
type PopulationCategory struct {
	Category        string `json:"category"`
	Count           int    `json:"count"`
	TotalPopulation int64  `json:"totalPopulation"`
	TotalCases      int64  `json:"totalCases"`
	TotalDeaths     int64  `json:"totalDeaths"`
}

// HistoricalTrend is one country's differenced trailing-window series
type HistoricalTrend struct {
	Country   string            `json:"country"`
	Cases     []covid.DailyPoint `json:"cases"`
	Deaths    []covid.DailyPoint `json:"deaths"`
	Recovered []covid.DailyPoint `json:"recovered"`
}

// GlobalOverview fetches the planet-wide stats and the country list in
// parallel, then asks the oracle for a worldwide summary.
func (s *AnalysisService) GlobalOverview(ctx context.Context) (*GlobalOverview, error) {
	var global *covid.GlobalStats
	var countries []covid.CountryRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		global, err = s.feed.GetGlobalStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		countries, err = s.feed.GetAllCountries(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "overview feed fetch failed")
	}

	top := make([]covid.CountryRecord, len(countries))
	copy(top, countries)
	sort.Slice(top, func(i, j int) bool { return top[i].Cases > top[j].Cases })
	if len(top) > 5 {
		top = top[:5]
	}

	return &GlobalOverview{
		Global:             global,
		TopCountries:       top,
		CountriesReporting: len(countries),
		Insight:            s.oracle.GenerateGlobalInsights(ctx, countries),
	}, nil
}

// PopulationBreakdown buckets countries by population size and sums their
// headline counts per bucket.
func (s *AnalysisService) PopulationBreakdown(countries []covid.CountryRecord) []PopulationCategory {
	buckets := []struct {
		name string
		in   func(p int64) bool
	}{
		{"Mega (>100M)", func(p int64) bool { return p > 100_000_000 }},
		{"Large (10M-100M)", func(p int64) bool { return p >= 10_000_000 && p <= 100_000_000 }},
		{"Medium (1M-10M)", func(p int64) bool { return p >= 1_000_000 && p < 10_000_000 }},
		{"Small (<1M)", func(p int64) bool { return p < 1_000_000 }},
	}

	out := make([]PopulationCategory, 0, len(buckets))
	for _, b := range buckets {
		cat := PopulationCategory{Category: b.name}
		for _, c := range countries {
			if !b.in(c.Population) {
				continue
			}
			cat.Count++
			cat.TotalPopulation += c.Population
			cat.TotalCases += c.Cases
			cat.TotalDeaths += c.Deaths
		}
		out = append(out, cat)
	}
	return out
}

// HistoricalTrend fetches and differences one country's trailing window
func (s *AnalysisService) HistoricalTrend(ctx context.Context, country string, days int) (*HistoricalTrend, error) {
	hist, err := s.feed.GetHistoricalData(ctx, country, days)
	if err != nil {
		return nil, errors.Wrapf(err, "historical fetch failed for %s", country)
	}
	return &HistoricalTrend{
		Country:   hist.Country,
		Cases:     covid.DailySeries(hist.Timeline.Cases),
		Deaths:    covid.DailySeries(hist.Timeline.Deaths),
		Recovered: covid.DailySeries(hist.Timeline.Recovered),
	}, nil
}

// PopulationBreakdownFromFeed fetches the country list and buckets it
func (s *AnalysisService) PopulationBreakdownFromFeed(ctx context.Context) ([]PopulationCategory, error) {
	countries, err := s.feed.GetAllCountries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "population feed fetch failed")
	}
	return s.PopulationBreakdown(countries), nil
}

// ContinentsFromFeed fetches the country list and extracts its continents
func (s *AnalysisService) ContinentsFromFeed(ctx context.Context) ([]string, error) {
	countries, err := s.feed.GetAllCountries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "continent feed fetch failed")
	}
	return s.Continents(countries), nil
}

// Continents lists the distinct continents present in a record set, sorted,
// for filter option menus. Records without a continent are skipped.
func (s *AnalysisService) Continents(countries []covid.CountryRecord) []string {
	seen := map[string]bool{}
	for _, c := range countries {
		if c.Continent != "" {
			seen[c.Continent] = true
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
