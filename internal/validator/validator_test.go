package validator

import (
	"encoding/json"
	"testing"

	"github.com/ArowuTest/leadcapture-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CreateLeadRequest(t *testing.T) {
	req := &models.CreateLeadRequest{CompanyID: "C1", CampaignID: "X1", Content: json.RawMessage(`{}`)}
	assert.NoError(t, Validate(req))

	err := Validate(&models.CreateLeadRequest{CompanyID: "C1"})
	require.Error(t, err)
	assert.Equal(t, "field 'campaignId' is required; field 'content' is required", err.Error())
}

func TestValidate_OtherTags(t *testing.T) {
	type sample struct {
		Email string `json:"email" validate:"email"`
	}
	err := Validate(sample{Email: "nope"})
	require.Error(t, err)
	assert.Equal(t, "field 'email' failed validation 'email'", err.Error())
}
