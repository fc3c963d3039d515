package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ArowuTest/leadcapture-backend/internal/models"
	"github.com/ArowuTest/leadcapture-backend/internal/repositories"
	"github.com/ArowuTest/leadcapture-backend/internal/services"
	"github.com/ArowuTest/leadcapture-backend/pkg/jwt"
	"github.com/ArowuTest/leadcapture-backend/pkg/logger"
	"go.uber.org/zap"
)

// SampleCompanyID is the tenant created by the seeder
const SampleCompanyID = "COMP00000001"

// SampleCompany returns the demo tenant with one campaign per form layout
func SampleCompany() *models.Company {
	company := &models.Company{
		CompanyID:   SampleCompanyID,
		CompanyName: "Sample Company",
		Image:       "/company.png",
		Status:      models.CompanyStatusActive,
		Campaigns: []models.Campaign{
			{CampaignID: "CAMP00001", Name: "Basic Lead Campaign", AdsetID: "ADSET001",
				Params: []string{"first-name", "last-name", "email"}, CreativeLink: []string{"https://example.com/creative1.jpg"}},
			{CampaignID: "CAMP00002", Name: "Contact Campaign", AdsetID: "ADSET002",
				Params: []string{"first-name", "last-name", "email", "phone"}, CreativeLink: []string{"https://example.com/creative2.jpg"}},
			{CampaignID: "CAMP00003", Name: "Location Campaign", AdsetID: "ADSET003",
				Params: []string{"first-name", "last-name", "location"}, CreativeLink: []string{"https://example.com/creative3.jpg"}},
			{CampaignID: "CAMP00004", Name: "Full Contact Campaign", AdsetID: "ADSET004",
				Params: []string{"first-name", "last-name", "email", "phone", "location"}, CreativeLink: []string{"https://example.com/creative4.jpg"}},
			{CampaignID: "CAMP00005", Name: "WhatsApp Campaign", AdsetID: "ADSET005",
				Params: []string{"name", "whatsapp", "location"}, CreativeLink: []string{"https://example.com/creative5.jpg"}},
		},
	}
	company.ApplyDefaults()
	return company
}

// SeedSampleCompany creates the sample tenant unless it already exists
func SeedSampleCompany(ctx context.Context, repo repositories.CompanyRepository) (bool, error) {
	created, err := repo.CreateIfAbsent(ctx, SampleCompany())
	if err != nil {
		return false, fmt.Errorf("failed to seed sample company: %w", err)
	}
	return created, nil
}

// ImportResult summarizes a CSV import
type ImportResult struct {
	Imported int
	Skipped  int
}

// ParseLeadRecord turns one CSV row into a submission. companyId and
// campaignId columns are required; WhatsApp, previousSite, badges,
// priority and createdTime map to lead fields and every other column
// becomes a content field.
func ParseLeadRecord(header, record []string) (*models.CreateLeadRequest, error) {
	if len(record) != len(header) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(header), len(record))
	}

	req := &models.CreateLeadRequest{}
	content := map[string]string{}
	for i, column := range header {
		column = strings.TrimSpace(column)
		value := strings.TrimSpace(record[i])
		switch column {
		case "companyId":
			req.CompanyID = value
		case "campaignId":
			req.CampaignID = value
		case "WhatsApp":
			req.WhatsApp = &value
		case "previousSite":
			req.PreviousSite = &value
		case "badges":
			req.Badges = quoted(value)
		case "priority":
			req.Priority = quoted(value)
		case "createdTime":
			req.CreatedTime = quoted(value)
		case "":
		default:
			if value != "" {
				content[column] = value
			}
		}
	}

	raw, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	req.Content = raw
	return req, nil
}

func quoted(s string) json.RawMessage {
	if s == "" {
		return nil
	}
	raw, _ := json.Marshal(s)
	return raw
}

// ImportLeads reads a CSV with a header row and submits every row through
// the lead service so imported leads get the same defaults as live ones.
// Bad rows are logged and skipped.
func ImportLeads(ctx context.Context, svc services.LeadService, r io.Reader) (ImportResult, error) {
	var result ImportResult
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return result, errors.New("CSV file is empty")
		}
		return result, fmt.Errorf("failed to read CSV header: %w", err)
	}

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			logger.Log.Warn("Skipping unreadable CSV row", zap.Int("line", line), zap.Error(err))
			result.Skipped++
			continue
		}

		req, err := ParseLeadRecord(header, record)
		if err == nil {
			_, err = svc.CreateLead(ctx, req, nil)
		}
		if err != nil {
			logger.Log.Warn("Skipping CSV row", zap.Int("line", line), zap.Error(err))
			result.Skipped++
			continue
		}
		result.Imported++
	}
	return result, nil
}

// InsertFakeLeads stores n generated leads spread across the sample
// company's campaigns, for local demos.
func InsertFakeLeads(ctx context.Context, repo repositories.LeadRepository, n int) error {
	campaigns := SampleCompany().Campaigns
	for i := 0; i < n; i++ {
		lead := models.NewFakeLead(&models.Lead{
			CompanyID:  SampleCompanyID,
			CampaignID: campaigns[i%len(campaigns)].CampaignID,
		})
		if err := repo.Create(ctx, lead); err != nil {
			return fmt.Errorf("failed to insert fake lead %d: %w", i+1, err)
		}
	}
	return nil
}

// DevToken issues a bearer token for a "role:companyId" pair, for calling
// the listing endpoint without the upstream auth layer.
func DevToken(secret, pair string, ttl time.Duration) (string, error) {
	role, companyID, ok := strings.Cut(pair, ":")
	role, companyID = strings.TrimSpace(role), strings.TrimSpace(companyID)
	if !ok || role == "" || companyID == "" {
		return "", fmt.Errorf("token %q must be role:companyId", pair)
	}
	return jwt.GenerateIdentityToken(secret, "dev-"+role, role, companyID, ttl)
}
