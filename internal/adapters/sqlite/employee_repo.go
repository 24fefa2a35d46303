package sqlite

import (
	"context"
	"database/sql"

	"github.com/example/phishtrack/internal/apperr"
	"github.com/example/phishtrack/internal/ports/secondary"
)

// EmployeeRepository implements secondary.EmployeeRepository with SQLite.
// Employee inserts go through the EnrollmentStore; this repository only
// answers lookups.
type EmployeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new SQLite employee repository.
func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// GetByEmailAndCampaign retrieves the employee enrolled under the given
// campaign with the given email.
func (r *EmployeeRepository) GetByEmailAndCampaign(ctx context.Context, email, campaignID string) (*secondary.EmployeeRecord, error) {
	record := &secondary.EmployeeRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, name, department, campaign_id FROM employees WHERE email = ? AND campaign_id = ?",
		email, campaignID,
	).Scan(&record.ID, &record.Email, &record.Name, &record.Department, &record.CampaignID)

	if err == sql.ErrNoRows {
		return nil, apperr.NewNotFound("employee", email)
	}
	if err != nil {
		return nil, apperr.NewStorage("get employee", err)
	}

	return record, nil
}

// Ensure EmployeeRepository implements the interface.
var _ secondary.EmployeeRepository = (*EmployeeRepository)(nil)
