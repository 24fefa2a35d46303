package primary

import "context"

// TrackingService defines the primary port for recording simulated
// click and report events. Both operations are idempotent; repeated
// events refresh the stored timestamp.
type TrackingService interface {
	// RecordClick registers a click for the result with the given
	// tracking token.
	RecordClick(ctx context.Context, token string) error

	// RecordReport registers a phishing report from the employee with
	// the given email under the given campaign.
	RecordReport(ctx context.Context, email, campaignID string) error
}
