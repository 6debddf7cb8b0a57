package covid

// CountryInfo carries the feed's per-country display metadata
type CountryInfo struct {
	ISO2 string `json:"iso2"`
	ISO3 string `json:"iso3"`
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
	Flag string  `json:"flag"`
}

// CountryRecord is one country's cumulative record as served by the feed.
// Missing numeric fields decode to zero; daily deltas may be negative on
// feed corrections and are propagated as-is.
type CountryRecord struct {
	Country     string      `json:"country"`
	CountryInfo CountryInfo `json:"countryInfo"`
	Continent   string      `json:"continent"`
	Population  int64       `json:"population"`

	Cases     int64 `json:"cases"`
	Deaths    int64 `json:"deaths"`
	Recovered int64 `json:"recovered"`
	Active    int64 `json:"active"`
	Critical  int64 `json:"critical"`
	Tests     int64 `json:"tests"`

	TodayCases     int64 `json:"todayCases"`
	TodayDeaths    int64 `json:"todayDeaths"`
	TodayRecovered int64 `json:"todayRecovered"`

	CasesPerOneMillion     float64 `json:"casesPerOneMillion"`
	DeathsPerOneMillion    float64 `json:"deathsPerOneMillion"`
	TestsPerOneMillion     float64 `json:"testsPerOneMillion"`
	ActivePerOneMillion    float64 `json:"activePerOneMillion"`
	RecoveredPerOneMillion float64 `json:"recoveredPerOneMillion"`
	CriticalPerOneMillion  float64 `json:"criticalPerOneMillion"`

	Updated int64 `json:"updated"`
}

// GlobalStats is the planet-wide aggregate record
type GlobalStats struct {
	Cases             int64   `json:"cases"`
	Deaths            int64   `json:"deaths"`
	Recovered         int64   `json:"recovered"`
	Active            int64   `json:"active"`
	Critical          int64   `json:"critical"`
	TodayCases        int64   `json:"todayCases"`
	TodayDeaths       int64   `json:"todayDeaths"`
	AffectedCountries int     `json:"affectedCountries"`
	Population        int64   `json:"population"`
	Updated           int64   `json:"updated"`
}

// Timeline holds per-day cumulative counts keyed by the feed's date string
type Timeline struct {
	Cases     map[string]int64 `json:"cases"`
	Deaths    map[string]int64 `json:"deaths"`
	Recovered map[string]int64 `json:"recovered"`
}

// HistoricalData is the trailing-window history for one country
type HistoricalData struct {
	Country  string   `json:"country"`
	Timeline Timeline `json:"timeline"`
}
