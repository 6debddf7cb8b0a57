package metrics

import "math"

// rangeConfigs holds the canonical four-band table for each metric. Risk
// levels mirror the historical label wording, which is why some labels and
// risks look mismatched: "Very High Spread" carries High (the wording sniffing
// it replaced matched "High" before anything else), "Insufficient Testing" is
// the worst testing band and carries Critical, and "Low Recovery" carries Low
// despite being the worst recovery band. These assignments are observable
// behavior and must not be "corrected" here.
var rangeConfigs = map[Key][]Band{
	DeathsPerOneMillion: {
		{Min: 0, Max: 500, Color: "#22c55e", Label: "Low Risk (0-500)", Risk: RiskLow},
		{Min: 501, Max: 1500, Color: "#eab308", Label: "Medium Risk (501-1500)", Risk: RiskMedium},
		{Min: 1501, Max: 3000, Color: "#f97316", Label: "High Risk (1501-3000)", Risk: RiskHigh},
		{Min: 3001, Max: math.Inf(1), Color: "#ef4444", Label: "Critical Risk (3000+)", Risk: RiskCritical},
	},
	CasesPerOneMillion: {
		{Min: 0, Max: 50000, Color: "#22c55e", Label: "Low Spread (0-50K)", Risk: RiskLow},
		{Min: 50001, Max: 150000, Color: "#eab308", Label: "Medium Spread (50K-150K)", Risk: RiskMedium},
		{Min: 150001, Max: 300000, Color: "#f97316", Label: "High Spread (150K-300K)", Risk: RiskHigh},
		{Min: 300001, Max: math.Inf(1), Color: "#ef4444", Label: "Very High Spread (300K+)", Risk: RiskHigh},
	},
	TestsPerOneMillion: {
		{Min: 0, Max: 100000, Color: "#ef4444", Label: "Insufficient Testing (0-100K)", Risk: RiskCritical},
		{Min: 100001, Max: 500000, Color: "#f97316", Label: "Moderate Testing (100K-500K)", Risk: RiskMedium},
		{Min: 500001, Max: 1000000, Color: "#eab308", Label: "Good Testing (500K-1M)", Risk: RiskMedium},
		{Min: 1000001, Max: math.Inf(1), Color: "#22c55e", Label: "Excellent Testing (1M+)", Risk: RiskLow},
	},
	ActivePerOneMillion: {
		{Min: 0, Max: 1000, Color: "#22c55e", Label: "Low Activity (0-1K)", Risk: RiskLow},
		{Min: 1001, Max: 5000, Color: "#eab308", Label: "Medium Activity (1K-5K)", Risk: RiskMedium},
		{Min: 5001, Max: 15000, Color: "#f97316", Label: "High Activity (5K-15K)", Risk: RiskHigh},
		{Min: 15001, Max: math.Inf(1), Color: "#ef4444", Label: "Very High Activity (15K+)", Risk: RiskHigh},
	},
	RecoveredPerOneMillion: {
		{Min: 0, Max: 50000, Color: "#ef4444", Label: "Low Recovery (0-50K)", Risk: RiskLow},
		{Min: 50001, Max: 150000, Color: "#f97316", Label: "Medium Recovery (50K-150K)", Risk: RiskMedium},
		{Min: 150001, Max: 300000, Color: "#eab308", Label: "Good Recovery (150K-300K)", Risk: RiskMedium},
		{Min: 300001, Max: math.Inf(1), Color: "#22c55e", Label: "Excellent Recovery (300K+)", Risk: RiskLow},
	},
	CriticalPerOneMillion: {
		{Min: 0, Max: 10, Color: "#22c55e", Label: "Low Critical (0-10)", Risk: RiskLow},
		{Min: 11, Max: 50, Color: "#eab308", Label: "Medium Critical (11-50)", Risk: RiskMedium},
		{Min: 51, Max: 100, Color: "#f97316", Label: "High Critical (51-100)", Risk: RiskHigh},
		{Min: 101, Max: math.Inf(1), Color: "#ef4444", Label: "Very High Critical (100+)", Risk: RiskHigh},
	},
}

var metricLabels = map[Key]string{
	DeathsPerOneMillion:    "Deaths per Million",
	CasesPerOneMillion:     "Cases per Million",
	TestsPerOneMillion:     "Tests per Million",
	ActivePerOneMillion:    "Active Cases per Million",
	RecoveredPerOneMillion: "Recovered per Million",
	CriticalPerOneMillion:  "Critical Cases per Million",
}

// metricOrder fixes the option listing order
var metricOrder = []Key{
	DeathsPerOneMillion,
	CasesPerOneMillion,
	TestsPerOneMillion,
	ActivePerOneMillion,
	RecoveredPerOneMillion,
	CriticalPerOneMillion,
}

// RangeConfig returns the canonical band table for a metric, nil if unknown
func RangeConfig(metric Key) []Band {
	return rangeConfigs[metric]
}

// Label returns the display label for a metric key
func Label(metric Key) string {
	return metricLabels[metric]
}

// IsValid reports whether the key names a known metric
func IsValid(metric Key) bool {
	_, ok := rangeConfigs[metric]
	return ok
}

// Options lists all analyzable metrics with their display labels
func Options() []Option {
	opts := make([]Option, 0, len(metricOrder))
	for _, k := range metricOrder {
		opts = append(opts, Option{Key: k, Label: metricLabels[k]})
	}
	return opts
}
