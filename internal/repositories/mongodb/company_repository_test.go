package mongodb

import (
	"context"
	"testing"

	"github.com/ArowuTest/leadcapture-backend/internal/apperrors"
	"github.com/ArowuTest/leadcapture-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const companiesNS = "test.companies"

func TestCompanyRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by company id", func(mt *mtest.T) {
		repo := NewCompanyRepository(mt.DB)
		company := models.NewFakeCompany(2)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, companiesNS, mtest.FirstBatch, toDoc(mt.T, company)))

		got, err := repo.FindByCompanyID(context.Background(), company.CompanyID)
		require.NoError(mt, err)
		assert.Equal(mt, company.CompanyID, got.CompanyID)
		require.Len(mt, got.Campaigns, 2)
		assert.Equal(mt, company.Campaigns[1].Params, got.Campaigns[1].Params)
	})

	mt.Run("missing company is not found", func(mt *mtest.T) {
		repo := NewCompanyRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, companiesNS, mtest.FirstBatch))

		_, err := repo.FindByCompanyID(context.Background(), "NOPE")
		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("store failure is a database error", func(mt *mtest.T) {
		repo := NewCompanyRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 1, Name: "InternalError", Message: "boom"}))

		_, err := repo.FindByCompanyID(context.Background(), "C1")
		assert.ErrorIs(mt, err, apperrors.ErrDatabase)
		assert.NotErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("create if absent inserts", func(mt *mtest.T) {
		repo := NewCompanyRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: primitive.NewObjectID()}}}},
		))

		company := &models.Company{CompanyID: "C1", CompanyName: "Acme"}
		created, err := repo.CreateIfAbsent(context.Background(), company)
		require.NoError(mt, err)
		assert.True(mt, created)
		assert.Equal(mt, models.CompanyStatusActive, company.Status)
	})

	mt.Run("create if absent leaves existing company alone", func(mt *mtest.T) {
		repo := NewCompanyRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		created, err := repo.CreateIfAbsent(context.Background(), &models.Company{CompanyID: "C1"})
		require.NoError(mt, err)
		assert.False(mt, created)
	})
}
