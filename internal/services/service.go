package services

import (
	"context"

	"github.com/ArowuTest/leadcapture-backend/internal/leadquery"
	"github.com/ArowuTest/leadcapture-backend/internal/models"
)

// LeadService defines the interface for lead ingestion and retrieval
type LeadService interface {
	// CreateLead validates a submission, applies defaults and stores it.
	// The caller identity is optional and only used to fill a missing companyId.
	CreateLead(ctx context.Context, req *models.CreateLeadRequest, caller *models.Identity) (*models.Lead, error)

	// SearchLeads runs a normalized listing query and returns one page
	SearchLeads(ctx context.Context, q leadquery.Query) (*models.LeadPage, error)

	// RecentLeads returns the most recently stored leads across all tenants
	RecentLeads(ctx context.Context) ([]*models.Lead, error)
}

// CampaignService defines the interface for campaign lookups
type CampaignService interface {
	GetCampaign(ctx context.Context, companyID, campaignID string) (*models.Campaign, error)
}
