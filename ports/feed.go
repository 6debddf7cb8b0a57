package ports

import (
	"context"

	"covidlens/domain/covid"
)

// CountryFeed provides read-only access to the external COVID-19 data source.
// Implementations own their timeout policy; the core treats a returned error
// as the only failure signal and never retries.
type CountryFeed interface {
	GetAllCountries(ctx context.Context) ([]covid.CountryRecord, error)
	GetCountry(ctx context.Context, country string) (*covid.CountryRecord, error)
	GetHistoricalData(ctx context.Context, country string, days int) (*covid.HistoricalData, error)
	GetGlobalStats(ctx context.Context) (*covid.GlobalStats, error)
}
