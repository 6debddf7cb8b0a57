package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Shape describes the distribution of one metric across countries, used by
// the overview endpoints to flag heavily skewed metrics.
type Shape struct {
	Skewness   float64 `json:"skewness"`
	ExKurtosis float64 `json:"exKurtosis"`
	IQR        float64 `json:"iqr"`
	Outliers   int     `json:"outliers"`
}

// DistributionShape computes skewness, excess kurtosis and an IQR-based
// outlier count. Needs at least four values to say anything meaningful;
// smaller inputs return a zero shape.
func DistributionShape(values []float64) Shape {
	if len(values) < 4 {
		return Shape{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	q1 := sorted[len(sorted)/4]
	q3 := sorted[len(sorted)*3/4]
	iqr := q3 - q1

	lowerFence := q1 - 1.5*iqr
	upperFence := q3 + 1.5*iqr
	outliers := 0
	for _, v := range sorted {
		if v < lowerFence || v > upperFence {
			outliers++
		}
	}

	return Shape{
		Skewness:   stat.Skew(sorted, nil),
		ExKurtosis: stat.ExKurtosis(sorted, nil),
		IQR:        iqr,
		Outliers:   outliers,
	}
}
