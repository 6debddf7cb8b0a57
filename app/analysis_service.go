package app

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"covidlens/domain/covid"
	"covidlens/domain/geo"
	"covidlens/domain/insight"
	"covidlens/domain/metrics"
	"covidlens/internal/analysis"
	"covidlens/internal/errors"
	"covidlens/ports"
)

// AnalysisService composes the resolver, normalizer, classifier and
// aggregator into per-metric analyses. Every dependency is injected; nothing
// here is a package singleton, so tests can run isolated cache lifetimes.
type AnalysisService struct {
	feed         ports.CountryFeed
	oracle       ports.InsightOracle
	resolver     *geo.Resolver
	cache        *gocache.Cache
	defaultLimit int
}

// NewAnalysisService wires an orchestrator with its own cache lifetime
func NewAnalysisService(feed ports.CountryFeed, oracle ports.InsightOracle, resolver *geo.Resolver, cacheTTL time.Duration, defaultLimit int) *AnalysisService {
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	return &AnalysisService{
		feed:         feed,
		oracle:       oracle,
		resolver:     resolver,
		cache:        gocache.New(cacheTTL, 2*cacheTTL),
		defaultLimit: defaultLimit,
	}
}

// AnalyzeMetric classifies and ranks countries for one metric. A live cache
// entry for the (metric, continent, limit) triple is returned unchanged.
// Cache misses are not deduplicated: near-simultaneous misses each compute
// and the later write wins, which is fine because the computation is pure.
func (s *AnalysisService) AnalyzeMetric(ctx context.Context, countries []covid.CountryRecord, metric metrics.Key, continentFilter string, limit int) (*metrics.MetricAnalysis, error) {
	if !metrics.IsValid(metric) {
		return nil, errors.InvalidInput(fmt.Sprintf("unknown metric %q", metric))
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	continent := continentFilter
	if continent == "" {
		continent = "all"
	}
	cacheKey := fmt.Sprintf("%s-%s-%d", metric, continent, limit)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*metrics.MetricAnalysis), nil
	}

	filtered := make([]covid.CountryRecord, 0, len(countries))
	values := make([]float64, 0, len(countries))
	for _, c := range countries {
		v := metrics.Value(c, metric)
		if v <= 0 {
			continue
		}
		if continentFilter != "" && continentFilter != "All" && c.Continent != continentFilter {
			continue
		}
		filtered = append(filtered, c)
		values = append(values, v)
	}

	// Percentiles rank against the whole filtered population, not just the
	// slice that survives the limit below.
	basis := analysis.NewPercentileBasis(values)
	bands := metrics.RangeConfig(metric)

	countryData := make([]metrics.CountryMetricData, 0, len(filtered))
	for i, c := range filtered {
		v := values[i]
		cls := metrics.Classify(v, bands)
		continent := c.Continent
		if continent == "" {
			continent = "Unknown"
		}
		countryData = append(countryData, metrics.CountryMetricData{
			Country:    c.Country,
			Value:      v,
			Continent:  continent,
			Flag:       c.CountryInfo.Flag,
			RiskLevel:  cls.Risk,
			Range:      cls.Label,
			Color:      cls.Color,
			Percentile: basis.Rank(v),
		})
	}

	sort.SliceStable(countryData, func(i, j int) bool {
		return countryData[i].Value > countryData[j].Value
	})
	if len(countryData) > limit {
		countryData = countryData[:limit]
	}

	insights := s.generateInsights(ctx, metric, countryData)

	result := &metrics.MetricAnalysis{
		Metric:    metric,
		Countries: countryData,
		Ranges:    bands,
		Insights:  insights,
		Timestamp: time.Now().UnixMilli(),
	}
	s.cache.Set(cacheKey, result, gocache.DefaultExpiration)
	return result, nil
}

// AnalyzeMetricFromFeed fetches the country list and analyzes it
func (s *AnalysisService) AnalyzeMetricFromFeed(ctx context.Context, metric metrics.Key, continentFilter string, limit int) (*metrics.MetricAnalysis, error) {
	countries, err := s.feed.GetAllCountries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "analysis feed fetch failed")
	}
	return s.AnalyzeMetric(ctx, countries, metric, continentFilter, limit)
}

// generateInsights asks the oracle about the top five countries; a degraded
// oracle yields the deterministic templated summary instead.
func (s *AnalysisService) generateInsights(ctx context.Context, metric metrics.Key, countries []metrics.CountryMetricData) string {
	if len(countries) == 0 {
		return fmt.Sprintf("No countries reported positive %s values for this selection.", metrics.Label(metric))
	}

	top := countries
	if len(top) > 5 {
		top = top[:5]
	}
	parts := make([]string, 0, len(top))
	for _, c := range top {
		parts = append(parts, fmt.Sprintf("%s: %.1f (%s)", c.Country, c.Value, c.Range))
	}

	question := fmt.Sprintf(`Analyze the %s data for these top countries: %s.

Provide a brief analysis covering:
1. Key patterns in the data distribution
2. Notable outliers or concerning trends
3. Potential factors influencing these metrics
4. Actionable insights for public health

Keep response under 150 words and focus on actionable insights.`,
		metrics.Label(metric), strings.Join(parts, ", "))

	resp := s.oracle.Summarize(ctx, question)
	if resp.Success {
		return resp.Content
	}
	log.Printf("[AnalysisService] oracle degraded, using fallback insight for %s", metric)
	return fallbackInsightText(metric, countries)
}

// fallbackInsightText synthesizes a summary sentence from the top three
// countries, the overall average, and the risk split.
func fallbackInsightText(metric metrics.Key, countries []metrics.CountryMetricData) string {
	top := countries
	if len(top) > 3 {
		top = top[:3]
	}

	names := make([]string, 0, len(top))
	minV, maxV := top[0].Value, top[0].Value
	for _, c := range top {
		names = append(names, c.Country)
		if c.Value < minV {
			minV = c.Value
		}
		if c.Value > maxV {
			maxV = c.Value
		}
	}

	var sum float64
	highRisk, lowRisk := 0, 0
	for _, c := range countries {
		sum += c.Value
		switch c.RiskLevel {
		case metrics.RiskCritical, metrics.RiskHigh:
			highRisk++
		case metrics.RiskLow:
			lowRisk++
		}
	}
	avg := sum / float64(len(countries))

	return fmt.Sprintf("%s analysis shows significant variation across countries. Top performers include %s with values ranging from %.1f to %.1f. Average across all countries is %.1f. %d countries show high/critical levels while %d countries maintain low-risk status. This suggests varying healthcare capacities and pandemic response effectiveness across regions.",
		metrics.Label(metric), strings.Join(names, ", "), minV, maxV, avg, highRisk, lowRisk)
}

// Statistics aggregates the values of a classified snapshot
func (s *AnalysisService) Statistics(countries []metrics.CountryMetricData) (analysis.Summary, error) {
	values := make([]float64, 0, len(countries))
	for _, c := range countries {
		values = append(values, c.Value)
	}
	return analysis.Aggregate(values)
}

// DistributionShape describes how skewed a snapshot's values are
func (s *AnalysisService) DistributionShape(countries []metrics.CountryMetricData) analysis.Shape {
	values := make([]float64, 0, len(countries))
	for _, c := range countries {
		values = append(values, c.Value)
	}
	return analysis.DistributionShape(values)
}

// RiskDistribution counts countries per risk level
func (s *AnalysisService) RiskDistribution(countries []metrics.CountryMetricData) map[metrics.RiskLevel]int {
	return metrics.RiskDistribution(countries)
}

// MapCodes resolves a snapshot's countries into ISO2 codes for choropleth
// output. Unresolvable names and non-geographic sentinels are skipped; they
// stay in the ranked list, just not on the map.
func (s *AnalysisService) MapCodes(countries []metrics.CountryMetricData) map[string]float64 {
	out := make(map[string]float64, len(countries))
	for _, c := range countries {
		code, ok := s.resolver.ResolveMappable(c.Country)
		if !ok {
			continue
		}
		out[code] = c.Value
	}
	return out
}

// CountryInsight fetches one country's record and asks the oracle about it
func (s *AnalysisService) CountryInsight(ctx context.Context, country string) (*insight.AIInsight, error) {
	record, err := s.feed.GetCountry(ctx, country)
	if err != nil {
		return nil, errors.Wrapf(err, "country insight fetch failed for %s", country)
	}
	result := s.oracle.AnalyzeCountry(ctx, *record)
	return &result, nil
}

// ClearCache drops every analysis snapshot
func (s *AnalysisService) ClearCache() {
	s.cache.Flush()
}
