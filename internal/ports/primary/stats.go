package primary

import "context"

// StatsService defines the primary port for campaign statistics.
type StatsService interface {
	// GetCampaignStats computes aggregate counters and rates for a
	// campaign. A campaign with zero results yields zeros, not an error.
	GetCampaignStats(ctx context.Context, campaignID string) (*StatsReport, error)
}

// StatsReport is the computed statistics document. The JSON field names
// are the export format; the structured export must round-trip to an
// equal report.
type StatsReport struct {
	CampaignID       string            `json:"campaign_id"`
	TotalEmployees   int               `json:"total_employees"`
	EmailsSent       int               `json:"emails_sent"`
	LinksClicked     int               `json:"links_clicked"`
	PhishingReported int               `json:"phishing_reported"`
	ClickRate        float64           `json:"click_rate"`
	ReportRate       float64           `json:"report_rate"`
	DepartmentStats  []DepartmentStats `json:"department_stats"`
}

// DepartmentStats is the per-department breakdown within a report.
type DepartmentStats struct {
	Department string `json:"department"`
	Total      int    `json:"total"`
	Clicked    int    `json:"clicked"`
	Reported   int    `json:"reported"`
}
