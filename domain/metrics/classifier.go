package metrics

// Classification is the band assignment for one value
type Classification struct {
	Risk  RiskLevel
	Label string
	Color string
}

// Classify walks the band list in stored order and returns the first band
// whose inclusive [Min, Max] range contains the value. A value no band covers
// (misconfigured table, or a negative value with no negative-bound band)
// falls into the last band, tagged Critical.
func Classify(value float64, bands []Band) Classification {
	for _, b := range bands {
		if value >= b.Min && value <= b.Max {
			return Classification{Risk: b.Risk, Label: b.Label, Color: b.Color}
		}
	}
	last := bands[len(bands)-1]
	return Classification{Risk: RiskCritical, Label: last.Label, Color: last.Color}
}

// ClassifyMetric classifies a value against a metric's canonical table
func ClassifyMetric(value float64, metric Key) Classification {
	return Classify(value, rangeConfigs[metric])
}

// RiskDistribution counts countries per risk level in a classified snapshot
func RiskDistribution(countries []CountryMetricData) map[RiskLevel]int {
	dist := map[RiskLevel]int{
		RiskLow:      0,
		RiskMedium:   0,
		RiskHigh:     0,
		RiskCritical: 0,
	}
	for _, c := range countries {
		dist[c.RiskLevel]++
	}
	return dist
}
