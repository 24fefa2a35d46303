package app

import (
	"context"
	"time"

	"github.com/example/phishtrack/internal/ports/primary"
	"github.com/example/phishtrack/internal/ports/secondary"
)

// TrackingServiceImpl implements the TrackingService interface.
type TrackingServiceImpl struct {
	employeeRepo secondary.EmployeeRepository
	resultRepo   secondary.ResultRepository
	now          func() time.Time
}

// NewTrackingService creates a new TrackingService with injected dependencies.
func NewTrackingService(employeeRepo secondary.EmployeeRepository, resultRepo secondary.ResultRepository) *TrackingServiceImpl {
	return &TrackingServiceImpl{
		employeeRepo: employeeRepo,
		resultRepo:   resultRepo,
		now:          time.Now,
	}
}

// RecordClick registers a click for the result with the given token.
// Repeated clicks refresh the timestamp; they are not an error.
func (s *TrackingServiceImpl) RecordClick(ctx context.Context, token string) error {
	return s.resultRepo.MarkClicked(ctx, token, s.now().UTC())
}

// RecordReport registers a phishing report from the employee with the
// given email under the given campaign. Idempotent, same as clicks.
func (s *TrackingServiceImpl) RecordReport(ctx context.Context, email, campaignID string) error {
	employee, err := s.employeeRepo.GetByEmailAndCampaign(ctx, email, campaignID)
	if err != nil {
		return err
	}

	return s.resultRepo.MarkReported(ctx, employee.ID, campaignID, s.now().UTC())
}

// Ensure TrackingServiceImpl implements the interface.
var _ primary.TrackingService = (*TrackingServiceImpl)(nil)
