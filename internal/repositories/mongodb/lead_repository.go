package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/ArowuTest/leadcapture-backend/internal/apperrors"
	"github.com/ArowuTest/leadcapture-backend/internal/leadquery"
	"github.com/ArowuTest/leadcapture-backend/internal/models"
	"github.com/ArowuTest/leadcapture-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LeadsCollection is where lead documents live
const LeadsCollection = "leads"

// Compile-time check to ensure LeadRepository implements the interface
var _ repositories.LeadRepository = (*LeadRepository)(nil)

// LeadRepository handles MongoDB operations for Lead
type LeadRepository struct {
	collection *mongo.Collection
}

// NewLeadRepository creates a new LeadRepository
func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{
		collection: db.Collection(LeadsCollection),
	}
}

// EnsureIndexes creates one tenant/campaign index per sortable field so
// every allowed listing order is served by an index.
func (r *LeadRepository) EnsureIndexes(ctx context.Context) error {
	sortable := []string{"createdTime", "createdAt", "updatedAt", "priority", "contactAttempts"}
	indexes := make([]mongo.IndexModel, 0, len(sortable)+1)
	for _, field := range sortable {
		indexes = append(indexes, mongo.IndexModel{
			Keys: bson.D{{Key: "companyId", Value: 1}, {Key: "campaignId", Value: 1}, {Key: field, Value: -1}},
		})
	}
	indexes = append(indexes, mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}})

	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create lead indexes: %w: %w", apperrors.ErrDatabase, err)
	}
	return nil
}

// Create inserts a new lead
func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	now := time.Now()
	if lead.ID.IsZero() {
		lead.ID = primitive.NewObjectID()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = now
	}
	lead.UpdatedAt = lead.CreatedAt

	if _, err := r.collection.InsertOne(ctx, lead); err != nil {
		return fmt.Errorf("insert lead: %w: %w", apperrors.ErrDatabase, err)
	}
	return nil
}

// Count counts leads matching the query filter
func (r *LeadRepository) Count(ctx context.Context, q leadquery.Query) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, q.Filter())
	if err != nil {
		return 0, fmt.Errorf("count leads: %w: %w", apperrors.ErrDatabase, err)
	}
	return n, nil
}

// Find returns one sorted page of leads matching the query
func (r *LeadRepository) Find(ctx context.Context, q leadquery.Query) ([]*models.Lead, error) {
	return r.find(ctx, q.Filter(), q.FindOptions())
}

// FindRecent returns the newest leads by creation time, across all tenants
func (r *LeadRepository) FindRecent(ctx context.Context, limit int64) ([]*models.Lead, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *LeadRepository) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]*models.Lead, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find leads: %w: %w", apperrors.ErrDatabase, err)
	}
	defer cursor.Close(ctx)

	var leads []*models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("decode leads: %w: %w", apperrors.ErrDatabase, err)
	}

	// Ensure an empty slice is returned instead of nil if no leads found
	if leads == nil {
		leads = []*models.Lead{}
	}
	return leads, nil
}
