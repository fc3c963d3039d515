package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/ArowuTest/leadcapture-backend/internal/apperrors"
	"github.com/ArowuTest/leadcapture-backend/internal/leadquery"
	"github.com/ArowuTest/leadcapture-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const leadsNS = "test.leads"

func toDoc(t *testing.T, v interface{}) bson.D {
	t.Helper()
	data, err := bson.Marshal(v)
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(data, &doc))
	return doc
}

func sampleQuery(t *testing.T) leadquery.Query {
	t.Helper()
	q, err := leadquery.Normalize(
		leadquery.RawParams{CampaignID: "X1", Count: "2"},
		&models.Identity{Role: "owner", CompanyID: "C1"},
		time.Now(), time.UTC,
	)
	require.NoError(t, err)
	return q
}

func TestLeadRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns id and timestamps", func(mt *mtest.T) {
		repo := NewLeadRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		lead := &models.Lead{CompanyID: "C1", CampaignID: "X1", Content: models.Content{"firstName": models.StringValue("A")}}
		require.NoError(mt, repo.Create(context.Background(), lead))

		assert.False(mt, lead.ID.IsZero())
		assert.False(mt, lead.CreatedAt.IsZero())
		assert.Equal(mt, lead.CreatedAt, lead.UpdatedAt)
	})

	mt.Run("create surfaces store errors as database errors", func(mt *mtest.T) {
		repo := NewLeadRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 1, Name: "InternalError", Message: "boom"}))

		err := repo.Create(context.Background(), &models.Lead{CompanyID: "C1"})
		assert.ErrorIs(mt, err, apperrors.ErrDatabase)
	})

	mt.Run("count", func(mt *mtest.T) {
		repo := NewLeadRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, leadsNS, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(7)}}))

		n, err := repo.Count(context.Background(), sampleQuery(mt.T))
		require.NoError(mt, err)
		assert.Equal(mt, int64(7), n)
	})

	mt.Run("find decodes a page", func(mt *mtest.T) {
		repo := NewLeadRepository(mt.DB)
		first := models.NewFakeLead(&models.Lead{CompanyID: "C1", CampaignID: "X1"})
		second := models.NewFakeLead(&models.Lead{CompanyID: "C1", CampaignID: "X1", Badges: []string{"vip", "new"}})
		mt.AddMockResponses(mtest.CreateCursorResponse(0, leadsNS, mtest.FirstBatch, toDoc(mt.T, first), toDoc(mt.T, second)))

		leads, err := repo.Find(context.Background(), sampleQuery(mt.T))
		require.NoError(mt, err)
		require.Len(mt, leads, 2)
		assert.Equal(mt, first.ID, leads[0].ID)
		assert.Equal(mt, first.Content, leads[0].Content)
		assert.Equal(mt, []string{"vip", "new"}, leads[1].Badges)
	})

	mt.Run("find returns empty slice when nothing matches", func(mt *mtest.T) {
		repo := NewLeadRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, leadsNS, mtest.FirstBatch))

		leads, err := repo.Find(context.Background(), sampleQuery(mt.T))
		require.NoError(mt, err)
		assert.NotNil(mt, leads)
		assert.Empty(mt, leads)
	})

	mt.Run("find recent", func(mt *mtest.T) {
		repo := NewLeadRepository(mt.DB)
		lead := models.NewFakeLead(nil)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, leadsNS, mtest.FirstBatch, toDoc(mt.T, lead)))

		leads, err := repo.FindRecent(context.Background(), models.DefaultRecentLeads)
		require.NoError(mt, err)
		require.Len(mt, leads, 1)
		assert.Equal(mt, lead.CompanyID, leads[0].CompanyID)
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		repo := NewLeadRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		assert.NoError(mt, repo.EnsureIndexes(context.Background()))
	})
}
