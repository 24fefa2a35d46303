// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/phishtrack/internal/apperr"
	"github.com/example/phishtrack/internal/ports/secondary"
)

// CampaignRepository implements secondary.CampaignRepository with SQLite.
type CampaignRepository struct {
	db *sql.DB
}

// NewCampaignRepository creates a new SQLite campaign repository.
func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create persists a new campaign. Status and creation timestamp come
// from the schema defaults.
func (r *CampaignRepository) Create(ctx context.Context, campaign *secondary.CampaignRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO campaigns (id, name, template) VALUES (?, ?, ?)",
		campaign.ID, campaign.Name, campaign.Template,
	)
	if err != nil {
		return apperr.NewStorage("create campaign", err)
	}

	return nil
}

// GetByID retrieves a campaign by its ID.
func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*secondary.CampaignRecord, error) {
	var createdAt time.Time

	record := &secondary.CampaignRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, template, status, created_at FROM campaigns WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &record.Template, &record.Status, &createdAt)

	if err == sql.ErrNoRows {
		return nil, apperr.NewNotFound("campaign", id)
	}
	if err != nil {
		return nil, apperr.NewStorage("get campaign", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// List retrieves all campaigns ordered by creation time.
func (r *CampaignRepository) List(ctx context.Context) ([]*secondary.CampaignRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, template, status, created_at FROM campaigns ORDER BY created_at ASC, id ASC",
	)
	if err != nil {
		return nil, apperr.NewStorage("list campaigns", err)
	}
	defer rows.Close()

	var campaigns []*secondary.CampaignRecord
	for rows.Next() {
		var createdAt time.Time

		record := &secondary.CampaignRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Template, &record.Status, &createdAt); err != nil {
			return nil, apperr.NewStorage("scan campaign", err)
		}

		record.CreatedAt = createdAt.Format(time.RFC3339)
		campaigns = append(campaigns, record)
	}

	return campaigns, nil
}

// Ensure CampaignRepository implements the interface.
var _ secondary.CampaignRepository = (*CampaignRepository)(nil)
