package primary

import "context"

// EnrollmentService defines the primary port for enrolling recipients.
type EnrollmentService interface {
	// EnrollEmployees enrolls a batch of roster records into a campaign.
	// Every record yields a fresh result row; a pre-existing email keeps
	// its employee row untouched but still gets a new result.
	EnrollEmployees(ctx context.Context, req EnrollEmployeesRequest) (*EnrollEmployeesResponse, error)
}

// EnrollmentRecord is one validated roster entry.
type EnrollmentRecord struct {
	Email      string
	Name       string
	Department string
}

// EnrollEmployeesRequest contains parameters for an enrollment batch.
type EnrollEmployeesRequest struct {
	CampaignID string
	Records    []EnrollmentRecord
}

// EnrollEmployeesResponse reports how many records were processed.
// This counts roster records, not distinct emails.
type EnrollEmployeesResponse struct {
	Processed int
}
