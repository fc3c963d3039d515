package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead defaults
const (
	DefaultBadge       = "new"
	DefaultPriority    = 3
	MinPriority        = 1
	MaxPriority        = 5
	NotAvailable       = "N/A"
	DefaultRecentLeads = 50
)

// Lead is one captured form submission
type Lead struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CompanyID       string             `bson:"companyId" json:"companyId"`
	CampaignID      string             `bson:"campaignId" json:"campaignId"`
	Content         Content            `bson:"content" json:"content"`
	WhatsApp        string             `bson:"WhatsApp" json:"WhatsApp"`
	PreviousSite    string             `bson:"previousSite" json:"previousSite"`
	CreatedTime     time.Time          `bson:"createdTime" json:"createdTime"` // business time
	Badges          []string           `bson:"badges" json:"badges"`
	Priority        int                `bson:"priority" json:"priority"`
	LastContactedAt *time.Time         `bson:"lastContactedAt" json:"lastContactedAt"`
	ContactAttempts int                `bson:"contactAttempts" json:"contactAttempts"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateLeadRequest is the body of POST /leads. Optional fields are kept raw
// so malformed values can be coerced to defaults instead of rejected.
type CreateLeadRequest struct {
	CompanyID       string          `json:"companyId" validate:"required"`
	CampaignID      string          `json:"campaignId" validate:"required"`
	Content         json.RawMessage `json:"content" validate:"required"`
	WhatsApp        *string         `json:"WhatsApp,omitempty"`
	PreviousSite    *string         `json:"previousSite,omitempty"`
	CreatedTime     json.RawMessage `json:"createdTime,omitempty"`
	Badges          json.RawMessage `json:"badges,omitempty"`
	Priority        json.RawMessage `json:"priority,omitempty"`
	LastContactedAt json.RawMessage `json:"lastContactedAt,omitempty"`
	ContactAttempts json.RawMessage `json:"contactAttempts,omitempty"`
}

// CreateLeadResponse acknowledges an ingested lead
type CreateLeadResponse struct {
	OK          bool      `json:"ok"`
	ID          string    `json:"id"`
	CreatedTime time.Time `json:"createdTime"`
}

// LeadPage is one page of a lead search plus the metadata the caller needs
// to render pagination controls.
type LeadPage struct {
	Leads      []*Lead   `json:"leads"`
	PageCount  int64     `json:"pageCount"`
	TotalCount int64     `json:"totalCount"`
	Page       int64     `json:"page"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Count      int64     `json:"count"`
	SortBy     string    `json:"sortBy"`
	SortOrder  string    `json:"sortOrder"`
}
