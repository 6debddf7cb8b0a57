package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"

	"covidlens/internal/errors"
)

// ErrEmptyInput is returned when aggregation is asked for zero values. The
// behavior here used to be undefined; an explicit error beats a silent NaN
// because callers feed these numbers straight into rankings.
var ErrEmptyInput = errors.New(errors.CodeEmptyInput, "cannot aggregate an empty value set")

// Summary holds the descriptive statistics for one metric's value set
type Summary struct {
	Mean              float64 `json:"mean"`
	Median            float64 `json:"median"`
	StandardDeviation float64 `json:"standardDeviation"`
	Min               float64 `json:"min"`
	Max               float64 `json:"max"`
	Q1                float64 `json:"q1"`
	Q3                float64 `json:"q3"`
}

// Aggregate computes descriptive statistics over one metric's values.
// Standard deviation is the population form (divide by N). Quartiles are
// nearest-rank: direct indexing at floor(N*0.25) and floor(N*0.75) of the
// ascending sort, not interpolated, so results are bit-reproducible.
func Aggregate(values []float64) (Summary, error) {
	n := len(values)
	if n == 0 {
		return Summary{}, ErrEmptyInput
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, err := stats.Mean(sorted)
	if err != nil {
		return Summary{}, errors.Wrap(err, "mean")
	}
	median, err := stats.Median(sorted)
	if err != nil {
		return Summary{}, errors.Wrap(err, "median")
	}
	stdDev, err := stats.StandardDeviationPopulation(sorted)
	if err != nil {
		return Summary{}, errors.Wrap(err, "standard deviation")
	}

	return Summary{
		Mean:              mean,
		Median:            median,
		StandardDeviation: stdDev,
		Min:               sorted[0],
		Max:               sorted[n-1],
		Q1:                sorted[n/4],
		Q3:                sorted[n*3/4],
	}, nil
}

// PercentileBasis prepares a value set for repeated percentile-rank queries
type PercentileBasis struct {
	sorted []float64
}

// NewPercentileBasis sorts a copy of the values once
func NewPercentileBasis(values []float64) *PercentileBasis {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return &PercentileBasis{sorted: sorted}
}

// Rank returns the percentile rank of a value against the basis: the index of
// the first sorted element >= value, over N, times 100. Ties resolve by the
// position of the first qualifying element rather than by counting strictly
// lesser values; that is the contract, not a textbook percentile.
func (b *PercentileBasis) Rank(value float64) float64 {
	if len(b.sorted) == 0 {
		return 0
	}
	idx := sort.SearchFloat64s(b.sorted, value)
	return float64(idx) / float64(len(b.sorted)) * 100
}
