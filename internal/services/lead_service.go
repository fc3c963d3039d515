package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ArowuTest/leadcapture-backend/internal/apperrors"
	"github.com/ArowuTest/leadcapture-backend/internal/leadquery"
	"github.com/ArowuTest/leadcapture-backend/internal/models"
	"github.com/ArowuTest/leadcapture-backend/internal/observer"
	"github.com/ArowuTest/leadcapture-backend/internal/repositories"
	"github.com/ArowuTest/leadcapture-backend/internal/validator"
	"github.com/ArowuTest/leadcapture-backend/pkg/logger"
	"go.uber.org/zap"
)

// Compile-time check to ensure LeadServiceImpl implements LeadService
var _ LeadService = (*LeadServiceImpl)(nil)

// LeadServiceImpl handles lead ingestion and listing
type LeadServiceImpl struct {
	leadRepo repositories.LeadRepository
	loc      *time.Location
	now      func() time.Time
}

// NewLeadService creates a new LeadServiceImpl. Bare dates in submissions
// are interpreted in loc.
func NewLeadService(leadRepo repositories.LeadRepository, loc *time.Location) *LeadServiceImpl {
	if loc == nil {
		loc = time.Local
	}
	return &LeadServiceImpl{
		leadRepo: leadRepo,
		loc:      loc,
		now:      time.Now,
	}
}

// CreateLead stores one submission after applying field defaults
func (s *LeadServiceImpl) CreateLead(ctx context.Context, req *models.CreateLeadRequest, caller *models.Identity) (*models.Lead, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", apperrors.ErrValidation)
	}

	req.CompanyID = strings.TrimSpace(req.CompanyID)
	req.CampaignID = strings.TrimSpace(req.CampaignID)
	if req.CompanyID == "" && caller != nil {
		req.CompanyID = strings.TrimSpace(caller.CompanyID)
	}
	if bytes.Equal(bytes.TrimSpace(req.Content), []byte("null")) {
		req.Content = nil
	}

	if err := validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	content, err := models.ParseContent(req.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	createdTime, ok := coerceTime(req.CreatedTime, s.loc)
	if !ok {
		createdTime = s.now()
	}
	var lastContactedAt *time.Time
	if t, ok := coerceTime(req.LastContactedAt, s.loc); ok {
		lastContactedAt = &t
	}

	lead := &models.Lead{
		CompanyID:       req.CompanyID,
		CampaignID:      req.CampaignID,
		Content:         content,
		WhatsApp:        coerceText(req.WhatsApp),
		PreviousSite:    coerceText(req.PreviousSite),
		CreatedTime:     createdTime,
		Badges:          coerceBadges(req.Badges),
		Priority:        coercePriority(req.Priority),
		LastContactedAt: lastContactedAt,
		ContactAttempts: coerceContactAttempts(req.ContactAttempts),
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	observer.IncLeadIngested()
	logger.FromContext(ctx).Info("Lead created",
		zap.String("lead_id", lead.ID.Hex()),
		zap.String("company_id", lead.CompanyID),
		zap.String("campaign_id", lead.CampaignID),
	)
	return lead, nil
}

// SearchLeads counts the matching leads, then fetches the requested page
func (s *LeadServiceImpl) SearchLeads(ctx context.Context, q leadquery.Query) (page *models.LeadPage, err error) {
	start := time.Now()
	defer func() { observer.ObserveLeadQuery(q.SortBy, err, time.Since(start)) }()

	total, err := s.leadRepo.Count(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	leads, err := s.leadRepo.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to find leads: %w", err)
	}

	return q.Result(leads, total), nil
}

// RecentLeads returns the latest leads by insertion time
func (s *LeadServiceImpl) RecentLeads(ctx context.Context) ([]*models.Lead, error) {
	leads, err := s.leadRepo.FindRecent(ctx, models.DefaultRecentLeads)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent leads: %w", err)
	}
	return leads, nil
}
