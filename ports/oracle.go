package ports

import (
	"context"

	"covidlens/domain/covid"
	"covidlens/domain/insight"
)

// InsightOracle wraps the external generative-text endpoint that turns
// numeric summaries into prose. Implementations never surface transport
// failures: a degraded oracle answers from a local fallback bank, and
// Summarize reports which one served the reply via OracleResponse.Success.
type InsightOracle interface {
	// Summarize answers a free-text question about the data
	Summarize(ctx context.Context, question string) insight.OracleResponse

	// AnalyzeCountry produces a structured per-country insight
	AnalyzeCountry(ctx context.Context, record covid.CountryRecord) insight.AIInsight

	// GenerateGlobalInsights summarizes the worldwide situation from all records
	GenerateGlobalInsights(ctx context.Context, countries []covid.CountryRecord) string

	// IsAvailable reports the circuit state without any network traffic
	IsAvailable() bool

	// ProbeConnection re-tests reachability without touching the circuit;
	// callers decide whether to ResetCircuit afterwards
	ProbeConnection(ctx context.Context) bool

	// ResetCircuit re-arms a tripped circuit
	ResetCircuit()
}
