package metrics

import "covidlens/domain/covid"

// Value extracts a record's normalized value for one metric, preferring the
// feed-supplied per-million rate and computing it from raw counts otherwise.
func Value(r covid.CountryRecord, metric Key) float64 {
	switch metric {
	case DeathsPerOneMillion:
		return covid.PerMillion(r.DeathsPerOneMillion, r.Deaths, r.Population)
	case CasesPerOneMillion:
		return covid.PerMillion(r.CasesPerOneMillion, r.Cases, r.Population)
	case TestsPerOneMillion:
		return covid.PerMillion(r.TestsPerOneMillion, r.Tests, r.Population)
	case ActivePerOneMillion:
		return covid.PerMillion(r.ActivePerOneMillion, r.Active, r.Population)
	case RecoveredPerOneMillion:
		return covid.PerMillion(r.RecoveredPerOneMillion, r.Recovered, r.Population)
	case CriticalPerOneMillion:
		return covid.PerMillion(r.CriticalPerOneMillion, r.Critical, r.Population)
	default:
		return 0
	}
}
