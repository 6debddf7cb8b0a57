// Package diseasesh reads the public disease.sh COVID-19 REST feed.
package diseasesh

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"

	"covidlens/domain/covid"
	"covidlens/internal/config"
	"covidlens/internal/errors"
)

// Client fetches country, global and historical records. Responses are
// returned as-is; all derivation happens in the core.
type Client struct {
	http *resty.Client
}

// NewClient builds a feed client from configuration
func NewClient(cfg config.FeedConfig) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "application/json"),
	}
}

// GetAllCountries returns the full country list, no pagination
func (c *Client) GetAllCountries(ctx context.Context) ([]covid.CountryRecord, error) {
	var records []covid.CountryRecord
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&records).
		Get("/countries")
	if err != nil {
		return nil, errors.Wrap(errors.FeedUnavailable(err.Error()), "fetch countries")
	}
	if resp.IsError() {
		return nil, errors.FeedUnavailable(fmt.Sprintf("countries returned status %d", resp.StatusCode()))
	}
	return records, nil
}

// GetCountry returns one country's record by feed name
func (c *Client) GetCountry(ctx context.Context, country string) (*covid.CountryRecord, error) {
	var record covid.CountryRecord
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&record).
		Get("/countries/" + url.PathEscape(country))
	if err != nil {
		return nil, errors.Wrapf(errors.FeedUnavailable(err.Error()), "fetch country %s", country)
	}
	if resp.IsError() {
		return nil, errors.FeedUnavailable(fmt.Sprintf("country %s returned status %d", country, resp.StatusCode()))
	}
	return &record, nil
}

// GetHistoricalData returns cumulative per-day counts for the trailing window
func (c *Client) GetHistoricalData(ctx context.Context, country string, days int) (*covid.HistoricalData, error) {
	if days <= 0 {
		days = 30
	}
	var hist covid.HistoricalData
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("lastdays", strconv.Itoa(days)).
		SetResult(&hist).
		Get("/historical/" + url.PathEscape(country))
	if err != nil {
		return nil, errors.Wrapf(errors.FeedUnavailable(err.Error()), "fetch history for %s", country)
	}
	if resp.IsError() {
		return nil, errors.FeedUnavailable(fmt.Sprintf("history for %s returned status %d", country, resp.StatusCode()))
	}
	return &hist, nil
}

// GetGlobalStats returns the planet-wide aggregate record
func (c *Client) GetGlobalStats(ctx context.Context) (*covid.GlobalStats, error) {
	var global covid.GlobalStats
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&global).
		Get("/all")
	if err != nil {
		return nil, errors.Wrap(errors.FeedUnavailable(err.Error()), "fetch global stats")
	}
	if resp.IsError() {
		return nil, errors.FeedUnavailable(fmt.Sprintf("global stats returned status %d", resp.StatusCode()))
	}
	return &global, nil
}
