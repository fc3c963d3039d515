package handlers

import (
	"net/http"

	"github.com/ArowuTest/leadcapture-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// CampaignHandler handles campaign lookups used by the lead capture form
type CampaignHandler struct {
	campaignService services.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignService services.CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// GetCampaign handles GET /campaign?companyId=&campaignId=
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	campaign, err := h.campaignService.GetCampaign(c.Request.Context(), c.Query("companyId"), c.Query("campaignId"))
	if err != nil {
		respondError(c, err, "Failed to get campaign")
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}
