package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ArowuTest/leadcapture-backend/internal/leadquery"
	"github.com/ArowuTest/leadcapture-backend/internal/models"
	"github.com/ArowuTest/leadcapture-backend/internal/services"
	"github.com/ArowuTest/leadcapture-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type recordingLeads struct {
	created []*models.Lead
}

func (r *recordingLeads) Create(_ context.Context, lead *models.Lead) error {
	lead.ID = primitive.NewObjectID()
	r.created = append(r.created, lead)
	return nil
}

func (r *recordingLeads) Count(context.Context, leadquery.Query) (int64, error) {
	return int64(len(r.created)), nil
}

func (r *recordingLeads) Find(context.Context, leadquery.Query) ([]*models.Lead, error) {
	return r.created, nil
}

func (r *recordingLeads) FindRecent(context.Context, int64) ([]*models.Lead, error) {
	return r.created, nil
}

type onceCompanies struct {
	seen map[string]bool
}

func (o *onceCompanies) FindByCompanyID(context.Context, string) (*models.Company, error) {
	return nil, nil
}

func (o *onceCompanies) CreateIfAbsent(_ context.Context, c *models.Company) (bool, error) {
	if o.seen[c.CompanyID] {
		return false, nil
	}
	o.seen[c.CompanyID] = true
	return true, nil
}

func TestSampleCompany(t *testing.T) {
	company := SampleCompany()
	assert.Equal(t, SampleCompanyID, company.CompanyID)
	require.Len(t, company.Campaigns, 5)
	assert.Equal(t, "CAMP00005", company.Campaigns[4].CampaignID)
	assert.Equal(t, []string{"name", "whatsapp", "location"}, company.Campaigns[4].Params)
	assert.Equal(t, models.CompanyStatusActive, company.Status)
}

func TestSeedSampleCompanyIsIdempotent(t *testing.T) {
	repo := &onceCompanies{seen: map[string]bool{}}

	created, err := SeedSampleCompany(context.Background(), repo)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = SeedSampleCompany(context.Background(), repo)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestParseLeadRecord(t *testing.T) {
	header := []string{"companyId", "campaignId", "firstName", "email", "WhatsApp", "badges", "priority"}
	req, err := ParseLeadRecord(header, []string{"C1", "X1", "Ada", " ada@example.com ", "+234", "vip,hot", "5"})
	require.NoError(t, err)

	assert.Equal(t, "C1", req.CompanyID)
	assert.Equal(t, "X1", req.CampaignID)
	assert.JSONEq(t, `{"firstName":"Ada","email":"ada@example.com"}`, string(req.Content))
	require.NotNil(t, req.WhatsApp)
	assert.Equal(t, "+234", *req.WhatsApp)
	assert.JSONEq(t, `"vip,hot"`, string(req.Badges))
	assert.JSONEq(t, `"5"`, string(req.Priority))

	_, err = ParseLeadRecord(header, []string{"C1"})
	assert.Error(t, err)
}

func TestImportLeads(t *testing.T) {
	csvData := strings.Join([]string{
		"companyId,campaignId,firstName,badges,priority",
		"C1,X1,Ada,vip,5",
		"C1,,Bob,,",
		"C1,X1,Cy",
		"C1,X2,Dee,,abc",
	}, "\n")

	repo := &recordingLeads{}
	svc := services.NewLeadService(repo, time.UTC)

	result, err := ImportLeads(context.Background(), svc, strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)

	require.Len(t, repo.created, 2)
	assert.Equal(t, []string{"vip"}, repo.created[0].Badges)
	assert.Equal(t, 5, repo.created[0].Priority)
	assert.Equal(t, []string{"new"}, repo.created[1].Badges)
	assert.Equal(t, 3, repo.created[1].Priority)
}

func TestImportLeadsEmptyFile(t *testing.T) {
	_, err := ImportLeads(context.Background(), services.NewLeadService(&recordingLeads{}, time.UTC), strings.NewReader(""))
	assert.Error(t, err)
}

func TestInsertFakeLeads(t *testing.T) {
	repo := &recordingLeads{}
	require.NoError(t, InsertFakeLeads(context.Background(), repo, 7))
	require.Len(t, repo.created, 7)
	assert.Equal(t, "CAMP00001", repo.created[0].CampaignID)
	assert.Equal(t, "CAMP00001", repo.created[5].CampaignID)
	for _, lead := range repo.created {
		assert.Equal(t, SampleCompanyID, lead.CompanyID)
	}
}

func TestDevToken(t *testing.T) {
	token, err := DevToken("s3cret", "ultra-admin:COMP00000001", time.Hour)
	require.NoError(t, err)

	claims, err := jwt.ValidateToken(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "ultra-admin", claims["role"])
	assert.Equal(t, "COMP00000001", claims["companyId"])

	_, err = DevToken("s3cret", "owner", time.Hour)
	assert.Error(t, err)
	_, err = DevToken("", "owner:C1", time.Hour)
	assert.Error(t, err)
}
