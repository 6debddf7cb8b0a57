package insight

import (
	"covidlens/domain/covid"
	"covidlens/domain/metrics"
)

// DetermineRiskLevel scores a country on absolute activity thresholds. This
// scale is intentionally separate from the range classifier in
// domain/metrics: it reads different inputs (active and critical load, daily
// case volume) with different cut points, and the two can disagree on the
// same country. Keep them independent; see DESIGN.md.
func DetermineRiskLevel(r covid.CountryRecord) metrics.RiskLevel {
	activePerMillion := covid.PerMillion(r.ActivePerOneMillion, r.Active, r.Population)
	deathsPerMillion := covid.PerMillion(r.DeathsPerOneMillion, r.Deaths, r.Population)
	todayCases := r.TodayCases
	criticalCases := r.Critical

	switch {
	case activePerMillion > 5000 || deathsPerMillion > 2000 || todayCases > 10000 || criticalCases > 1000:
		return metrics.RiskCritical
	case activePerMillion > 2000 || deathsPerMillion > 1000 || todayCases > 5000 || criticalCases > 500:
		return metrics.RiskHigh
	case activePerMillion > 500 || deathsPerMillion > 500 || todayCases > 1000 || criticalCases > 100:
		return metrics.RiskMedium
	default:
		return metrics.RiskLow
	}
}
