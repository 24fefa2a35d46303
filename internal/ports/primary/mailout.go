package primary

import "context"

// MailoutService defines the primary port for rendering test emails to
// disk.
type MailoutService interface {
	// GenerateEmails renders one document per enrolled recipient into
	// the output directory and marks each result as sent (best-effort).
	GenerateEmails(ctx context.Context, req GenerateEmailsRequest) (*GenerateEmailsResponse, error)
}

// GenerateEmailsRequest contains parameters for a mailout run.
type GenerateEmailsRequest struct {
	CampaignID string
	OutputDir  string
}

// GenerateEmailsResponse reports the outcome of a mailout run.
type GenerateEmailsResponse struct {
	EmailsWritten int
	OutputDir     string
}
