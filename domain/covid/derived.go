package covid

import "sort"

// DerivedRates holds the rate fields the feed does not supply directly.
// Every value here feeds sorting and bucket assignment downstream, so all
// arithmetic substitutes 0 for undefined ratios rather than NaN/Inf.
type DerivedRates struct {
	MortalityRate          float64
	RecoveryRate           float64
	CasesPerOneMillion     float64
	DeathsPerOneMillion    float64
	TestsPerOneMillion     float64
	ActivePerOneMillion    float64
	RecoveredPerOneMillion float64
	CriticalPerOneMillion  float64
}

// MortalityRate returns deaths as a percentage of cases, 0 when no cases
func (r CountryRecord) MortalityRate() float64 {
	if r.Cases > 0 {
		return float64(r.Deaths) / float64(r.Cases) * 100
	}
	return 0
}

// RecoveryRate returns recoveries as a percentage of cases, 0 when no cases
func (r CountryRecord) RecoveryRate() float64 {
	if r.Cases > 0 {
		return float64(r.Recovered) / float64(r.Cases) * 100
	}
	return 0
}

// PerMillion prefers the feed-supplied rate; when absent it normalizes the
// raw count against population, and a missing population yields 0.
func PerMillion(supplied float64, raw int64, population int64) float64 {
	if supplied != 0 {
		return supplied
	}
	if population > 0 {
		return float64(raw) / float64(population) * 1_000_000
	}
	return 0
}

// Derive computes the full set of rate fields for one record
func Derive(r CountryRecord) DerivedRates {
	return DerivedRates{
		MortalityRate:          r.MortalityRate(),
		RecoveryRate:           r.RecoveryRate(),
		CasesPerOneMillion:     PerMillion(r.CasesPerOneMillion, r.Cases, r.Population),
		DeathsPerOneMillion:    PerMillion(r.DeathsPerOneMillion, r.Deaths, r.Population),
		TestsPerOneMillion:     PerMillion(r.TestsPerOneMillion, r.Tests, r.Population),
		ActivePerOneMillion:    PerMillion(r.ActivePerOneMillion, r.Active, r.Population),
		RecoveredPerOneMillion: PerMillion(r.RecoveredPerOneMillion, r.Recovered, r.Population),
		CriticalPerOneMillion:  PerMillion(r.CriticalPerOneMillion, r.Critical, r.Population),
	}
}

// DailyPoint is one day of a differenced historical series
type DailyPoint struct {
	Date       string
	Cumulative int64
	Delta      int64
}

// DailySeries converts a cumulative timeline series into per-day deltas.
// The feed's date keys sort correctly only after parsing, but disease.sh
// serves them in order; we re-sort by the feed's M/D/YY layout to be safe.
// The first day's delta is 0 since there is no prior day to difference.
// Negative deltas (feed corrections) are kept.
func DailySeries(cumulative map[string]int64) []DailyPoint {
	if len(cumulative) == 0 {
		return nil
	}

	dates := make([]string, 0, len(cumulative))
	for d := range cumulative {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return lessFeedDate(dates[i], dates[j])
	})

	points := make([]DailyPoint, 0, len(dates))
	var prev int64
	for i, d := range dates {
		val := cumulative[d]
		delta := val - prev
		if i == 0 {
			delta = 0
		}
		points = append(points, DailyPoint{Date: d, Cumulative: val, Delta: delta})
		prev = val
	}
	return points
}

// lessFeedDate orders the feed's "M/D/YY" date strings chronologically
func lessFeedDate(a, b string) bool {
	am, ad, ay := splitFeedDate(a)
	bm, bd, by := splitFeedDate(b)
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

func splitFeedDate(s string) (month, day, year int) {
	part := 0
	val := 0
	out := [3]int{}
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '/' {
			if part < 3 {
				out[part] = val
			}
			part++
			val = 0
			continue
		}
		if s[i] >= '0' && s[i] <= '9' {
			val = val*10 + int(s[i]-'0')
		}
	}
	return out[0], out[1], out[2]
}
