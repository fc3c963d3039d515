package repositories

import (
	"context"

	"github.com/ArowuTest/leadcapture-backend/internal/leadquery"
	"github.com/ArowuTest/leadcapture-backend/internal/models"
)

// LeadRepository defines the interface for lead data operations
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	// Count returns how many leads match the query filter
	Count(ctx context.Context, q leadquery.Query) (int64, error)
	// Find returns one page of leads matching the query
	Find(ctx context.Context, q leadquery.Query) ([]*models.Lead, error)
	FindRecent(ctx context.Context, limit int64) ([]*models.Lead, error)
}

// CompanyRepository defines the interface for the company/campaign directory
type CompanyRepository interface {
	FindByCompanyID(ctx context.Context, companyID string) (*models.Company, error)
	// CreateIfAbsent inserts the company unless one with the same companyId
	// exists. It reports whether an insert happened.
	CreateIfAbsent(ctx context.Context, company *models.Company) (bool, error)
}
