// Package secondary defines the secondary ports (driven adapters) for
// the application. These are the interfaces through which the
// application drives external systems.
package secondary

import (
	"context"
	"time"
)

// CampaignRepository defines the secondary port for campaign persistence.
type CampaignRepository interface {
	// Create persists a new campaign.
	Create(ctx context.Context, campaign *CampaignRecord) error

	// GetByID retrieves a campaign by its ID.
	GetByID(ctx context.Context, id string) (*CampaignRecord, error)

	// List retrieves all campaigns ordered by creation time.
	List(ctx context.Context) ([]*CampaignRecord, error)
}

// CampaignRecord represents a campaign as stored in persistence.
type CampaignRecord struct {
	ID        string
	Name      string
	Template  string
	Status    string
	CreatedAt string
}

// EmployeeRepository defines the secondary port for employee lookups.
// Employee writes happen through the EnrollmentStore so that the
// upsert-plus-result sequence stays inside one transaction.
type EmployeeRepository interface {
	// GetByEmailAndCampaign retrieves the employee enrolled under the
	// given campaign with the given email.
	GetByEmailAndCampaign(ctx context.Context, email, campaignID string) (*EmployeeRecord, error)
}

// EmployeeRecord represents an employee as stored in persistence.
type EmployeeRecord struct {
	ID         string
	Email      string
	Name       string
	Department string
	CampaignID string
}

// EnrollmentStore executes an enrollment batch atomically: for each row
// an insert-if-absent on the employee (keyed by email) followed by an
// unconditional result insert. A failure partway through rolls the
// whole batch back.
type EnrollmentStore interface {
	EnrollBatch(ctx context.Context, campaignID string, rows []*EnrollmentRow) error
}

// EnrollmentRow carries the pre-generated identifiers and roster fields
// for one enrollment. EmployeeID is only used when the email is new;
// a pre-existing email keeps its original employee row.
type EnrollmentRow struct {
	EmployeeID string
	Email      string
	Name       string
	Department string
	ResultID   string
	Token      string
}

// ResultRepository defines the secondary port for result persistence.
type ResultRepository interface {
	// GetByToken retrieves a result by its tracking token.
	GetByToken(ctx context.Context, token string) (*ResultRecord, error)

	// ListRecipients returns the (email, name, token) triples for all
	// results under a campaign, joined to their employees.
	ListRecipients(ctx context.Context, campaignID string) ([]*RecipientRecord, error)

	// MarkSent sets email_sent on the result with the given token.
	MarkSent(ctx context.Context, token string) error

	// MarkClicked sets link_clicked and the click timestamp on the
	// result with the given token. Repeated calls refresh the timestamp.
	MarkClicked(ctx context.Context, token string, clickedAt time.Time) error

	// MarkReported sets phishing_reported and the report timestamp on
	// the results an employee holds under a campaign.
	MarkReported(ctx context.Context, employeeID, campaignID string, reportedAt time.Time) error

	// Totals aggregates result counters for a campaign.
	Totals(ctx context.Context, campaignID string) (*ResultTotals, error)

	// DepartmentTotals aggregates result counters per department for a
	// campaign.
	DepartmentTotals(ctx context.Context, campaignID string) ([]*DepartmentTotals, error)
}

// ResultRecord represents a result as stored in persistence.
type ResultRecord struct {
	ID               string
	EmployeeID       string
	CampaignID       string
	EmailSent        bool
	LinkClicked      bool
	PhishingReported bool
	ClickedAt        string
	ReportedAt       string
	Token            string
	CreatedAt        string
}

// RecipientRecord is the projection used for rendering emails.
type RecipientRecord struct {
	Email string
	Name  string
	Token string
}

// ResultTotals holds campaign-wide counter sums.
type ResultTotals struct {
	Total    int
	Sent     int
	Clicked  int
	Reported int
}

// DepartmentTotals holds per-department counter sums.
type DepartmentTotals struct {
	Department string
	Total      int
	Clicked    int
	Reported   int
}
