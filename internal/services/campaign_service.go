package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ArowuTest/leadcapture-backend/internal/apperrors"
	"github.com/ArowuTest/leadcapture-backend/internal/models"
	"github.com/ArowuTest/leadcapture-backend/internal/repositories"
)

// Compile-time check to ensure CampaignServiceImpl implements CampaignService
var _ CampaignService = (*CampaignServiceImpl)(nil)

// CampaignServiceImpl resolves campaigns from the company directory
type CampaignServiceImpl struct {
	companyRepo repositories.CompanyRepository
}

// NewCampaignService creates a new CampaignServiceImpl
func NewCampaignService(companyRepo repositories.CompanyRepository) *CampaignServiceImpl {
	return &CampaignServiceImpl{
		companyRepo: companyRepo,
	}
}

// GetCampaign returns the first campaign with campaignID in the company
func (s *CampaignServiceImpl) GetCampaign(ctx context.Context, companyID, campaignID string) (*models.Campaign, error) {
	companyID = strings.TrimSpace(companyID)
	campaignID = strings.TrimSpace(campaignID)
	if companyID == "" || campaignID == "" {
		return nil, fmt.Errorf("%w: companyId and campaignId are required", apperrors.ErrValidation)
	}

	company, err := s.companyRepo.FindByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company %s: %w", companyID, err)
	}

	campaign, ok := company.FindCampaign(campaignID)
	if !ok {
		return nil, fmt.Errorf("campaign %s: %w", campaignID, apperrors.ErrNotFound)
	}
	return campaign, nil
}
