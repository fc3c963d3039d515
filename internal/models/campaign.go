package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company status values
const (
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
)

// DefaultCampaignParams is used when a campaign declares no form fields
var DefaultCampaignParams = []string{"first-name", "last-name"}

// Company is a tenant and the campaigns it runs
type Company struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CompanyID   string             `bson:"companyId" json:"companyId"`
	CompanyName string             `bson:"companyName" json:"companyName"`
	Image       string             `bson:"image" json:"image"`
	Campaigns   []Campaign         `bson:"campaigns" json:"campaigns"`
	OwnerID     string             `bson:"ownerId,omitempty" json:"ownerId,omitempty"`
	Status      string             `bson:"status" json:"status"` // active, inactive
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Campaign is an intake configuration. Params lists the form fields it
// collects, in display order.
type Campaign struct {
	CampaignID   string   `bson:"campaignId" json:"campaignId"`
	Name         string   `bson:"name" json:"name"`
	AdsetID      string   `bson:"adsetId" json:"adsetId"`
	Params       []string `bson:"params" json:"params"`
	CreativeLink []string `bson:"creativeLink" json:"creativeLink"`
}

// FindCampaign returns the first campaign with the given ID. Uniqueness of
// campaign IDs within a company is not enforced.
func (c *Company) FindCampaign(campaignID string) (*Campaign, bool) {
	for i := range c.Campaigns {
		if c.Campaigns[i].CampaignID == campaignID {
			return &c.Campaigns[i], true
		}
	}
	return nil, false
}

// ApplyDefaults fills the fields the directory schema defaults
func (c *Company) ApplyDefaults() {
	if c.Image == "" {
		c.Image = "/company.png"
	}
	if c.Status == "" {
		c.Status = CompanyStatusActive
	}
	if c.Campaigns == nil {
		c.Campaigns = []Campaign{}
	}
	for i := range c.Campaigns {
		if len(c.Campaigns[i].Params) == 0 {
			c.Campaigns[i].Params = append([]string(nil), DefaultCampaignParams...)
		}
		if c.Campaigns[i].CreativeLink == nil {
			c.Campaigns[i].CreativeLink = []string{}
		}
	}
}
