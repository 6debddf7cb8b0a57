package ui

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"

	"covidlens/domain/metrics"
)

func (s *Server) handleMetricOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, metrics.Options())
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	metric := metrics.Key(chi.URLParam(r, "metric"))
	continent := r.URL.Query().Get("continent")
	limit := queryInt(r, "limit", 0)

	result, err := s.service.AnalyzeMetricFromFeed(r.Context(), metric, continent, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	result, err := s.analysisFor(r)
	if err != nil {
		writeError(w, err)
		return
	}

	summary, err := s.service.Statistics(result.Countries)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"metric":           result.Metric,
		"summary":          summary,
		"shape":            s.service.DistributionShape(result.Countries),
		"riskDistribution": s.service.RiskDistribution(result.Countries),
	})
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	result, err := s.analysisFor(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.service.MapCodes(result.Countries))
}

// handleInsightFragment serves the narrative insight rendered to HTML so the
// dashboard can drop it straight into the page.
func (s *Server) handleInsightFragment(w http.ResponseWriter, r *http.Request) {
	result, err := s.analysisFor(r)
	if err != nil {
		writeError(w, err)
		return
	}
	html := markdown.ToHTML([]byte(result.Insights), nil, nil)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(html)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	result, err := s.analysisFor(r)
	if err != nil {
		writeError(w, err)
		return
	}

	summary, err := s.service.Statistics(result.Countries)
	var summaryPtr = &summary
	if err != nil {
		// An empty snapshot still exports; it just has no statistics block.
		summaryPtr = nil
	}

	buf, err := s.exporter.WriteAnalysis(result, summaryPtr)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s-analysis.xlsx", result.Metric))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleCountryInsight(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	result, err := s.service.CountryInsight(r.Context(), country)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	days := queryInt(r, "days", 30)
	trend, err := s.service.HistoricalTrend(r.Context(), country, days)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trend)
}

func (s *Server) handleContinents(w http.ResponseWriter, r *http.Request) {
	continents, err := s.service.ContinentsFromFeed(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, continents)
}

func (s *Server) handlePopulation(w http.ResponseWriter, r *http.Request) {
	categories, err := s.service.PopulationBreakdownFromFeed(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.service.GlobalOverview(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (s *Server) handleOracleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"available": s.oracle.IsAvailable()})
}

func (s *Server) handleOracleProbe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"reachable": s.oracle.ProbeConnection(r.Context()),
		"available": s.oracle.IsAvailable(),
	})
}

func (s *Server) handleOracleReset(w http.ResponseWriter, r *http.Request) {
	s.oracle.ResetCircuit()
	writeJSON(w, http.StatusOK, map[string]bool{"available": s.oracle.IsAvailable()})
}

func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	s.service.ClearCache()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) analysisFor(r *http.Request) (*metrics.MetricAnalysis, error) {
	metric := metrics.Key(chi.URLParam(r, "metric"))
	continent := r.URL.Query().Get("continent")
	limit := queryInt(r, "limit", 0)
	return s.service.AnalyzeMetricFromFeed(r.Context(), metric, continent, limit)
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
