package worqhat

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"covidlens/domain/covid"
	"covidlens/domain/insight"
	"covidlens/domain/metrics"
)

// Section extractors for the structured per-country reply. RE2 has no
// lookahead, so each pattern consumes up to the next section header instead.
var (
	analysisRe        = regexp.MustCompile(`(?s)ANALYSIS:\s*(.+?)(?:KEY_METRICS:|$)`)
	keyMetricsRe      = regexp.MustCompile(`(?s)KEY_METRICS:\s*(.+?)(?:RECOMMENDATIONS:|$)`)
	recommendationsRe = regexp.MustCompile(`(?s)RECOMMENDATIONS:\s*(.+)$`)
)

// AnalyzeCountry produces a structured insight for one country. Risk comes
// from the absolute-threshold scale in domain/insight regardless of whether
// the oracle answers; a degraded oracle or an unparseable reply yields the
// deterministic fallback insight, never a partial one.
func (c *Client) AnalyzeCountry(ctx context.Context, record covid.CountryRecord) insight.AIInsight {
	riskLevel := insight.DetermineRiskLevel(record)

	if !c.IsAvailable() {
		return fallbackInsight(record, riskLevel)
	}

	question := fmt.Sprintf(`Analyze the following COVID-19 data for %s and provide:
1. A brief 2-3 sentence analysis of the current situation
2. 3 key metrics that stand out (positive or concerning)
3. 2-3 actionable recommendations for public health

Data:
%s

Please format your response as:
ANALYSIS: [your analysis]
KEY_METRICS: [metric 1] | [metric 2] | [metric 3]
RECOMMENDATIONS: [rec 1] | [rec 2] | [rec 3]`, record.Country, formatCountryData(record))

	training := "You are a COVID-19 epidemiologist and data analyst. Provide concise, evidence-based analysis of pandemic data. Focus on trends, risk assessment, and practical recommendations. Keep responses under 200 words total."

	resp := c.callOracle(ctx, question, training)
	if !resp.Success {
		return fallbackInsight(record, riskLevel)
	}

	analysis, keyMetrics, recommendations, ok := parseStructuredReply(resp.Content)
	if !ok {
		return fallbackInsight(record, riskLevel)
	}

	return insight.AIInsight{
		Country:         record.Country,
		Analysis:        analysis,
		RiskLevel:       riskLevel,
		KeyMetrics:      keyMetrics,
		Recommendations: recommendations,
		Timestamp:       time.Now().UnixMilli(),
	}
}

// parseStructuredReply extracts the three pipe-delimited sections. A reply
// missing any section is rejected wholesale.
func parseStructuredReply(content string) (analysis string, keyMetrics, recommendations []string, ok bool) {
	analysisMatch := analysisRe.FindStringSubmatch(content)
	metricsMatch := keyMetricsRe.FindStringSubmatch(content)
	recsMatch := recommendationsRe.FindStringSubmatch(content)
	if analysisMatch == nil || metricsMatch == nil || recsMatch == nil {
		return "", nil, nil, false
	}

	analysis = strings.TrimSpace(analysisMatch[1])
	keyMetrics = splitPipeList(metricsMatch[1], 3)
	recommendations = splitPipeList(recsMatch[1], 3)
	if analysis == "" || len(keyMetrics) == 0 || len(recommendations) == 0 {
		return "", nil, nil, false
	}
	return analysis, keyMetrics, recommendations, true
}

func splitPipeList(s string, limit int) []string {
	parts := strings.Split(s, "|")
	out := make([]string, 0, limit)
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
		if len(out) == limit {
			break
		}
	}
	return out
}

// fallbackInsight builds the deterministic per-country insight from the
// fallback bank: risk-matched analysis text, three headline numbers, and the
// first three canned recommendations.
func fallbackInsight(record covid.CountryRecord, riskLevel metrics.RiskLevel) insight.AIInsight {
	keyMetrics := []string{
		fmt.Sprintf("%s total cases recorded", formatNumber(record.Cases)),
		fmt.Sprintf("%s deaths per million population", formatNumber(int64(covid.PerMillion(record.DeathsPerOneMillion, record.Deaths, record.Population)))),
		fmt.Sprintf("%s tests per million conducted", formatNumber(int64(covid.PerMillion(record.TestsPerOneMillion, record.Tests, record.Population)))),
	}

	return insight.AIInsight{
		Country:         record.Country,
		Analysis:        insight.FallbackAnalysis(string(riskLevel)),
		RiskLevel:       riskLevel,
		KeyMetrics:      keyMetrics,
		Recommendations: insight.FallbackRecommendations[:3],
		Timestamp:       time.Now().UnixMilli(),
	}
}

// GenerateGlobalInsights summarizes the worldwide situation. The prompt
// carries the feed-wide totals and the five hardest-hit countries; a tripped
// circuit answers straight from the global fallback text.
func (c *Client) GenerateGlobalInsights(ctx context.Context, countries []covid.CountryRecord) string {
	if !c.IsAvailable() {
		return insight.FallbackGlobal
	}

	top := make([]covid.CountryRecord, len(countries))
	copy(top, countries)
	sort.Slice(top, func(i, j int) bool { return top[i].Cases > top[j].Cases })
	if len(top) > 5 {
		top = top[:5]
	}

	var totalCases, totalDeaths, totalRecovered int64
	for _, c := range countries {
		totalCases += c.Cases
		totalDeaths += c.Deaths
		totalRecovered += c.Recovered
	}

	topList := make([]string, 0, len(top))
	for _, t := range top {
		topList = append(topList, fmt.Sprintf("%s (%s)", t.Country, formatNumber(t.Cases)))
	}

	question := fmt.Sprintf(`Provide a brief global COVID-19 situation summary based on:
- Total Cases: %s
- Total Deaths: %s
- Total Recovered: %s
- Countries Reporting: %d
- Top 5 Affected Countries: %s

Provide a 3-4 sentence global overview focusing on current trends and key observations.`,
		formatNumber(totalCases), formatNumber(totalDeaths), formatNumber(totalRecovered),
		len(countries), strings.Join(topList, ", "))

	return c.callOracle(ctx, question, "").Content
}

// formatCountryData lays a record out as the labeled block the prompt embeds
func formatCountryData(r covid.CountryRecord) string {
	continent := r.Continent
	if continent == "" {
		continent = "N/A"
	}
	return strings.TrimSpace(fmt.Sprintf(`Country: %s
Population: %s
Total Cases: %s
Total Deaths: %s
Total Recovered: %s
Active Cases: %s
Critical Cases: %s
Today's Cases: %s
Today's Deaths: %s
Today's Recovered: %s
Cases per Million: %s
Deaths per Million: %s
Tests per Million: %s
Continent: %s`,
		r.Country,
		formatNumber(r.Population),
		formatNumber(r.Cases),
		formatNumber(r.Deaths),
		formatNumber(r.Recovered),
		formatNumber(r.Active),
		formatNumber(r.Critical),
		formatNumber(r.TodayCases),
		formatNumber(r.TodayDeaths),
		formatNumber(r.TodayRecovered),
		formatNumber(int64(r.CasesPerOneMillion)),
		formatNumber(int64(r.DeathsPerOneMillion)),
		formatNumber(int64(r.TestsPerOneMillion)),
		continent))
}

// formatNumber renders an integer with comma grouping
func formatNumber(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}
