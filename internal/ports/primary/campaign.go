// Package primary defines the primary ports (driving interfaces) for
// the application, with their request/response types.
package primary

import "context"

// CampaignService defines the primary port for campaign operations.
type CampaignService interface {
	// CreateCampaign creates a new campaign bound to a catalog template.
	CreateCampaign(ctx context.Context, req CreateCampaignRequest) (*CreateCampaignResponse, error)

	// GetCampaign retrieves a campaign by ID.
	GetCampaign(ctx context.Context, campaignID string) (*Campaign, error)

	// ListCampaigns retrieves all campaigns.
	ListCampaigns(ctx context.Context) ([]*Campaign, error)
}

// CreateCampaignRequest contains parameters for creating a campaign.
type CreateCampaignRequest struct {
	Name     string
	Template string
}

// CreateCampaignResponse contains the result of creating a campaign.
type CreateCampaignResponse struct {
	CampaignID string
	Campaign   *Campaign
}

// Campaign represents a campaign at the port boundary.
type Campaign struct {
	ID        string
	Name      string
	Template  string
	Status    string
	CreatedAt string
}
