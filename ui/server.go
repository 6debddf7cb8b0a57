// Package ui exposes the analysis core over HTTP. Handlers only decode and
// encode; every decision lives in app and domain.
package ui

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"covidlens/adapters/excel"
	"covidlens/app"
	"covidlens/internal/errors"
	"covidlens/ports"
)

// Server is the JSON API over the analysis core
type Server struct {
	router   *chi.Mux
	service  *app.AnalysisService
	oracle   ports.InsightOracle
	exporter *excel.ReportWriter
	port     string
}

// NewServer wires the router
func NewServer(service *app.AnalysisService, oracle ports.InsightOracle, exporter *excel.ReportWriter, port string) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		service:  service,
		oracle:   oracle,
		exporter: exporter,
		port:     port,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/metrics", s.handleMetricOptions)
		r.Get("/continents", s.handleContinents)
		r.Get("/overview", s.handleOverview)
		r.Get("/overview/population", s.handlePopulation)
		r.Get("/status", s.handleOracleStatus)
		r.Post("/status/probe", s.handleOracleProbe)
		r.Post("/status/reset", s.handleOracleReset)
		r.Post("/cache/clear", s.handleCacheClear)

		r.Route("/analysis/{metric}", func(r chi.Router) {
			r.Get("/", s.handleAnalysis)
			r.Get("/statistics", s.handleStatistics)
			r.Get("/map", s.handleMap)
			r.Get("/insight", s.handleInsightFragment)
			r.Get("/export", s.handleExport)
		})

		r.Route("/countries/{country}", func(r chi.Router) {
			r.Get("/insight", s.handleCountryInsight)
			r.Get("/history", s.handleHistory)
		})
	})
}

// Start blocks serving HTTP until the listener fails
func (s *Server) Start() error {
	log.Printf("[Server] listening on :%s", s.port)
	return http.ListenAndServe(":"+s.port, s.router)
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[Server] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput, errors.CodeEmptyInput:
		status = http.StatusBadRequest
	case errors.CodeFeedUnavailable:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
