package models

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewFakeLead creates a Lead with plausible fake data and all defaults
// applied. Overrides are applied field by field when non-zero.
func NewFakeLead(override *Lead) *Lead {
	now := time.Now().UTC().Truncate(time.Millisecond)
	first := gofakeit.FirstName()
	last := gofakeit.LastName()

	lead := &Lead{
		ID:         primitive.NewObjectID(),
		CompanyID:  fmt.Sprintf("COMP%08d", gofakeit.Number(1, 99999999)),
		CampaignID: fmt.Sprintf("CAMP%05d", gofakeit.Number(1, 99999)),
		Content: Content{
			"firstName": StringValue(first),
			"lastName":  StringValue(last),
			"email":     StringValue(gofakeit.Email()),
			"phone":     StringValue(gofakeit.Phone()),
		},
		WhatsApp:        NotAvailable,
		PreviousSite:    NotAvailable,
		CreatedTime:     now.Add(-time.Duration(gofakeit.Number(1, 72)) * time.Hour),
		Badges:          []string{DefaultBadge},
		Priority:        DefaultPriority,
		ContactAttempts: 0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if override == nil {
		return lead
	}
	if override.CompanyID != "" {
		lead.CompanyID = override.CompanyID
	}
	if override.CampaignID != "" {
		lead.CampaignID = override.CampaignID
	}
	if override.Content != nil {
		lead.Content = override.Content
	}
	if override.WhatsApp != "" {
		lead.WhatsApp = override.WhatsApp
	}
	if override.PreviousSite != "" {
		lead.PreviousSite = override.PreviousSite
	}
	if !override.CreatedTime.IsZero() {
		lead.CreatedTime = override.CreatedTime
	}
	if len(override.Badges) > 0 {
		lead.Badges = override.Badges
	}
	if override.Priority != 0 {
		lead.Priority = override.Priority
	}
	if override.ContactAttempts != 0 {
		lead.ContactAttempts = override.ContactAttempts
	}
	return lead
}

// NewFakeCompany creates a Company with the given number of campaigns.
func NewFakeCompany(campaigns int) *Company {
	company := &Company{
		ID:          primitive.NewObjectID(),
		CompanyID:   fmt.Sprintf("COMP%08d", gofakeit.Number(1, 99999999)),
		CompanyName: gofakeit.Company(),
		Status:      CompanyStatusActive,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	for i := 1; i <= campaigns; i++ {
		company.Campaigns = append(company.Campaigns, Campaign{
			CampaignID:   fmt.Sprintf("CAMP%05d", i),
			Name:         gofakeit.BuzzWord() + " Campaign",
			AdsetID:      fmt.Sprintf("ADSET%03d", i),
			Params:       []string{"first-name", "last-name", "email"},
			CreativeLink: []string{gofakeit.URL()},
		})
	}
	company.ApplyDefaults()
	return company
}
