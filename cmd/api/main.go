package main

import (
	"log"

	"github.com/joho/godotenv"

	"covidlens/adapters/diseasesh"
	"covidlens/adapters/excel"
	"covidlens/adapters/worqhat"
	"covidlens/app"
	"covidlens/domain/geo"
	"covidlens/internal/config"
	"covidlens/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Main] no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Main] configuration error: %v", err)
	}

	feed := diseasesh.NewClient(cfg.Feed)
	oracle := worqhat.NewClient(cfg.Oracle)
	resolver := geo.NewResolver()
	service := app.NewAnalysisService(feed, oracle, resolver, cfg.Analysis.CacheTTL, cfg.Analysis.DefaultLimit)
	exporter := excel.NewReportWriter()

	server := ui.NewServer(service, oracle, exporter, cfg.Server.Port)
	log.Printf("[Main] starting covidlens API on port %s", cfg.Server.Port)
	if err := server.Start(); err != nil {
		log.Fatalf("[Main] server failed: %v", err)
	}
}
