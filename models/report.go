package models

// SiteMinutes is one row of a report's site breakdown.
type SiteMinutes struct {
	Host    string `json:"host"`
	Minutes int64  `json:"minutes"`
}

// Report is the daily productivity summary returned by the analysis
// endpoint. DeltaVsYesterday is nil when yesterday has no usable data, which
// renders as JSON null. BySite must never be nil so an empty breakdown
// renders as [].
type Report struct {
	ProductiveMinutes   int64         `json:"productive_minutes"`
	UnproductiveMinutes int64         `json:"unproductive_minutes"`
	ProductivityPercent float64       `json:"productivity_percent"`
	DeltaVsYesterday    *float64      `json:"delta_vs_yesterday_percent"`
	Quote               string        `json:"quote"`
	BySite              []SiteMinutes `json:"by_site"`
	Error               string        `json:"error,omitempty"`
}
