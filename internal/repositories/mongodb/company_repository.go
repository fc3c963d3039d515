package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArowuTest/leadcapture-backend/internal/apperrors"
	"github.com/ArowuTest/leadcapture-backend/internal/models"
	"github.com/ArowuTest/leadcapture-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CompaniesCollection holds the company/campaign directory
const CompaniesCollection = "companies"

var _ repositories.CompanyRepository = (*CompanyRepository)(nil)

// CompanyRepository handles MongoDB operations for Company
type CompanyRepository struct {
	collection *mongo.Collection
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{
		collection: db.Collection(CompaniesCollection),
	}
}

// EnsureIndexes makes companyId unique
func (r *CompanyRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "companyId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create company indexes: %w: %w", apperrors.ErrDatabase, err)
	}
	return nil
}

// FindByCompanyID finds a company by its business identifier
func (r *CompanyRepository) FindByCompanyID(ctx context.Context, companyID string) (*models.Company, error) {
	var company models.Company
	err := r.collection.FindOne(ctx, bson.M{"companyId": companyID}).Decode(&company)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("company %s: %w", companyID, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find company %s: %w: %w", companyID, apperrors.ErrDatabase, err)
	}
	return &company, nil
}

// CreateIfAbsent upserts with $setOnInsert so an existing company is never
// modified.
func (r *CompanyRepository) CreateIfAbsent(ctx context.Context, company *models.Company) (bool, error) {
	company.ApplyDefaults()
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"companyId": company.CompanyID},
		bson.M{"$setOnInsert": company},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, fmt.Errorf("upsert company %s: %w: %w", company.CompanyID, apperrors.ErrDatabase, err)
	}
	return result.UpsertedCount == 1, nil
}
