package insight

import "covidlens/domain/metrics"

// AIInsight is one country's narrative analysis: free text plus up to three
// key metric strings and up to three recommendations.
type AIInsight struct {
	Country         string            `json:"country"`
	Analysis        string            `json:"analysis"`
	RiskLevel       metrics.RiskLevel `json:"riskLevel"`
	KeyMetrics      []string          `json:"keyMetrics"`
	Recommendations []string          `json:"recommendations"`
	Timestamp       int64             `json:"timestamp"`
}

// OracleResponse is the outcome of one oracle call. Success is false when the
// content came from the local fallback bank instead of the remote endpoint.
type OracleResponse struct {
	Content   string `json:"content"`
	Success   bool   `json:"success"`
	Timestamp int64  `json:"timestamp"`
}
