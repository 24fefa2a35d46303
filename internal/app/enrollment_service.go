package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/phishtrack/internal/apperr"
	"github.com/example/phishtrack/internal/ports/primary"
	"github.com/example/phishtrack/internal/ports/secondary"
)

// EnrollmentServiceImpl implements the EnrollmentService interface.
type EnrollmentServiceImpl struct {
	campaignRepo    secondary.CampaignRepository
	enrollmentStore secondary.EnrollmentStore
}

// NewEnrollmentService creates a new EnrollmentService with injected dependencies.
func NewEnrollmentService(campaignRepo secondary.CampaignRepository, enrollmentStore secondary.EnrollmentStore) *EnrollmentServiceImpl {
	return &EnrollmentServiceImpl{
		campaignRepo:    campaignRepo,
		enrollmentStore: enrollmentStore,
	}
}

// EnrollEmployees enrolls a batch of roster records into a campaign.
// Validation happens before any write; the batch itself is atomic.
// Every record yields a fresh result row, so re-enrolling a known email
// produces a second, independent result for tracking purposes.
func (s *EnrollmentServiceImpl) EnrollEmployees(ctx context.Context, req primary.EnrollEmployeesRequest) (*primary.EnrollEmployeesResponse, error) {
	if len(req.Records) == 0 {
		return nil, apperr.NewValidation("no records to enroll")
	}
	for _, record := range req.Records {
		if record.Email == "" || record.Name == "" || record.Department == "" {
			return nil, apperr.NewValidation("record for %q is missing a required field (email, name, department)", record.Email)
		}
	}

	if _, err := s.campaignRepo.GetByID(ctx, req.CampaignID); err != nil {
		return nil, err
	}

	rows := make([]*secondary.EnrollmentRow, len(req.Records))
	for i, record := range req.Records {
		rows[i] = &secondary.EnrollmentRow{
			EmployeeID: uuid.NewString(),
			Email:      record.Email,
			Name:       record.Name,
			Department: record.Department,
			ResultID:   uuid.NewString(),
			Token:      uuid.NewString(),
		}
	}

	if err := s.enrollmentStore.EnrollBatch(ctx, req.CampaignID, rows); err != nil {
		return nil, err
	}

	return &primary.EnrollEmployeesResponse{Processed: len(rows)}, nil
}

// Ensure EnrollmentServiceImpl implements the interface.
var _ primary.EnrollmentService = (*EnrollmentServiceImpl)(nil)
