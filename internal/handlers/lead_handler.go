package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ArowuTest/leadcapture-backend/internal/apperrors"
	"github.com/ArowuTest/leadcapture-backend/internal/leadquery"
	"github.com/ArowuTest/leadcapture-backend/internal/middleware"
	"github.com/ArowuTest/leadcapture-backend/internal/models"
	"github.com/ArowuTest/leadcapture-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// LeadHandler handles lead-related HTTP requests
type LeadHandler struct {
	leadService services.LeadService
	loc         *time.Location
	now         func() time.Time
}

// NewLeadHandler creates a new LeadHandler. loc decides how date-only
// listing parameters are interpreted.
func NewLeadHandler(leadService services.LeadService, loc *time.Location) *LeadHandler {
	if loc == nil {
		loc = time.Local
	}
	return &LeadHandler{
		leadService: leadService,
		loc:         loc,
		now:         time.Now,
	}
}

// CreateLead handles POST /leads and POST /leed
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req models.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request body: %v", apperrors.ErrBadRequest, err), "Failed to create lead")
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), &req, middleware.IdentityFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to create lead")
		return
	}

	c.JSON(http.StatusCreated, models.CreateLeadResponse{
		OK:          true,
		ID:          lead.ID.Hex(),
		CreatedTime: lead.CreatedTime,
	})
}

// ListLeads handles GET /leed
func (h *LeadHandler) ListLeads(c *gin.Context) {
	raw := leadquery.RawParams{
		CompanyID:  c.Query("companyId"),
		CampaignID: c.Query("campaignId"),
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
		Query:      c.Query("query"),
		Count:      c.Query("count"),
		Page:       c.Query("page"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
		BadgeList:  c.Query("badgeList"),
	}

	q, err := leadquery.Normalize(raw, middleware.IdentityFromContext(c), h.now(), h.loc)
	if err != nil {
		respondError(c, err, "Failed to list leads")
		return
	}

	page, err := h.leadService.SearchLeads(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "Failed to list leads")
		return
	}

	c.JSON(http.StatusOK, page)
}

// RecentLeads handles GET /leads
func (h *LeadHandler) RecentLeads(c *gin.Context) {
	leads, err := h.leadService.RecentLeads(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get leads")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "data": leads})
}
