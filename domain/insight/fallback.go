package insight

import "strings"

// Fallback text bank served when the oracle is unreachable. The selection in
// FallbackFor is keyword sniffing over the prompt text and deliberately crude;
// it is observable behavior and stays as-is.
const (
	FallbackGlobal = "Global COVID-19 data reveals diverse patterns across regions, with varying vaccination rates, healthcare capacities, and public health responses. Countries with robust healthcare systems and high vaccination coverage generally demonstrate better pandemic outcomes. Continued vigilance and adaptive strategies remain crucial for global health security."

	FallbackKPI = "This country's COVID-19 metrics show varying performance compared to global averages. Key indicators suggest the need for continued monitoring and adaptive public health strategies based on local conditions and healthcare capacity."

	fallbackCritical = "This country shows critical COVID-19 activity with high transmission rates and concerning health metrics. Immediate attention to public health measures and healthcare capacity is essential."
	fallbackHigh     = "This country shows elevated COVID-19 activity with concerning metrics that require continued monitoring and enhanced public health measures."
	fallbackMedium   = "The country demonstrates moderate COVID-19 activity with mixed indicators requiring ongoing attention to health protocols and monitoring systems."
	fallbackLow      = "This country shows relatively controlled COVID-19 metrics with positive trends in key health indicators and effective management strategies."
)

// FallbackRecommendations are the canned public-health recommendations; the
// per-country fallback serves the first three.
var FallbackRecommendations = []string{
	"Maintain comprehensive vaccination programs",
	"Continue robust health monitoring systems",
	"Follow evidence-based public health guidelines",
	"Strengthen healthcare infrastructure capacity",
	"Implement targeted interventions for high-risk populations",
}

// FallbackFor selects a fallback text by keyword-matching the prompt.
// Order matters: "high risk" must be checked alongside "critical" before the
// bare "high" check, or every critical prompt would land on the high text.
func FallbackFor(question string) string {
	lower := strings.ToLower(question)

	if strings.Contains(lower, "global") {
		return FallbackGlobal
	}
	if strings.Contains(lower, "kpi") || strings.Contains(lower, "performance") {
		return FallbackKPI
	}
	if strings.Contains(lower, "critical") || strings.Contains(lower, "high risk") {
		return fallbackCritical
	}
	if strings.Contains(lower, "high") {
		return fallbackHigh
	}
	if strings.Contains(lower, "low") {
		return fallbackLow
	}
	return fallbackMedium
}

// FallbackAnalysis returns the per-country analysis text for a risk level
func FallbackAnalysis(risk string) string {
	switch strings.ToLower(risk) {
	case "critical":
		return fallbackCritical
	case "high":
		return fallbackHigh
	case "low":
		return fallbackLow
	default:
		return fallbackMedium
	}
}
