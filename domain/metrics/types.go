package metrics

import (
	"encoding/json"
	"math"
)

// Key identifies one of the per-million metrics the dashboard can analyze
type Key string

const (
	DeathsPerOneMillion    Key = "deathsPerOneMillion"
	CasesPerOneMillion     Key = "casesPerOneMillion"
	TestsPerOneMillion     Key = "testsPerOneMillion"
	ActivePerOneMillion    Key = "activePerOneMillion"
	RecoveredPerOneMillion Key = "recoveredPerOneMillion"
	CriticalPerOneMillion  Key = "criticalPerOneMillion"
)

// RiskLevel is the four-step severity scale used across the dashboard
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// Band is one entry of a per-metric ordered numeric range table. Min and Max
// are inclusive; the last band of a table carries Max = +Inf. Risk is assigned
// when the table is defined, so classification never has to sniff label text.
// Band lists are ordered ascending by Min and first match wins: reordering a
// table changes classification results.
type Band struct {
	Min   float64   `json:"min"`
	Max   float64   `json:"max"`
	Color string    `json:"color"`
	Label string    `json:"label"`
	Risk  RiskLevel `json:"risk"`
}

// MarshalJSON writes an unbounded Max as null; encoding/json rejects +Inf
// outright and clients already treat a null max as open-ended.
func (b Band) MarshalJSON() ([]byte, error) {
	type bandJSON struct {
		Min   float64   `json:"min"`
		Max   *float64  `json:"max"`
		Color string    `json:"color"`
		Label string    `json:"label"`
		Risk  RiskLevel `json:"risk"`
	}
	out := bandJSON{Min: b.Min, Color: b.Color, Label: b.Label, Risk: b.Risk}
	if !math.IsInf(b.Max, 1) {
		out.Max = &b.Max
	}
	return json.Marshal(out)
}

// CountryMetricData is one country's classified value for a single metric.
// Snapshots are created fresh per analysis and never mutated.
type CountryMetricData struct {
	Country    string    `json:"country"`
	Value      float64   `json:"value"`
	Continent  string    `json:"continent"`
	Flag       string    `json:"flag"`
	RiskLevel  RiskLevel `json:"riskLevel"`
	Range      string    `json:"range"`
	Color      string    `json:"color"`
	Percentile float64   `json:"percentile"`
}

// MetricAnalysis is the immutable result of one analysis query: the ranked and
// limited country list, the band table used, a narrative insight, and the
// creation time used for cache expiry.
type MetricAnalysis struct {
	Metric    Key                 `json:"metric"`
	Countries []CountryMetricData `json:"countries"`
	Ranges    []Band              `json:"ranges"`
	Insights  string              `json:"insights"`
	Timestamp int64               `json:"timestamp"`
}

// Option pairs a metric key with its display label
type Option struct {
	Key   Key    `json:"key"`
	Label string `json:"label"`
}
