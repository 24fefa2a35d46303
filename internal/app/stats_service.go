package app

import (
	"context"
	"math"

	"github.com/example/phishtrack/internal/ports/primary"
	"github.com/example/phishtrack/internal/ports/secondary"
)

// StatsServiceImpl implements the StatsService interface.
type StatsServiceImpl struct {
	resultRepo secondary.ResultRepository
}

// NewStatsService creates a new StatsService with injected dependencies.
func NewStatsService(resultRepo secondary.ResultRepository) *StatsServiceImpl {
	return &StatsServiceImpl{resultRepo: resultRepo}
}

// GetCampaignStats computes aggregate counters, rates, and the
// per-department breakdown for a campaign. A campaign with zero results
// yields a zeroed report.
func (s *StatsServiceImpl) GetCampaignStats(ctx context.Context, campaignID string) (*primary.StatsReport, error) {
	totals, err := s.resultRepo.Totals(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	departments, err := s.resultRepo.DepartmentTotals(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	report := &primary.StatsReport{
		CampaignID:       campaignID,
		TotalEmployees:   totals.Total,
		EmailsSent:       totals.Sent,
		LinksClicked:     totals.Clicked,
		PhishingReported: totals.Reported,
		ClickRate:        percentage(totals.Clicked, totals.Total),
		ReportRate:       percentage(totals.Reported, totals.Total),
		DepartmentStats:  make([]primary.DepartmentStats, len(departments)),
	}
	for i, d := range departments {
		report.DepartmentStats[i] = primary.DepartmentStats{
			Department: d.Department,
			Total:      d.Total,
			Clicked:    d.Clicked,
			Reported:   d.Reported,
		}
	}

	return report, nil
}

// percentage returns part/total as a percentage rounded to two decimal
// places, and 0 when total is zero.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}

// Ensure StatsServiceImpl implements the interface.
var _ primary.StatsService = (*StatsServiceImpl)(nil)
