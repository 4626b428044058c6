package validator

import (
	"testing"

	"techmista_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RegisterRequest(t *testing.T) {
	v := New()

	valid := dto.RegisterRequest{
		Name:     "Sam Seeker",
		Email:    "sam@example.test",
		Password: "long-enough-1",
		Role:     "solution_seeker",
	}
	assert.NoError(t, v.Validate(valid))

	invalid := dto.RegisterRequest{
		Name:     "S",
		Email:    "not-an-email",
		Password: "short",
		Role:     "admin",
	}
	err := v.Validate(invalid)
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	// Field names come from the json tags.
	assert.Contains(t, verr.Errors, "name")
	assert.Contains(t, verr.Errors, "email")
	assert.Contains(t, verr.Errors, "password")
	assert.Contains(t, verr.Errors, "role")
}

func TestValidate_ReviewStatusTag(t *testing.T) {
	v := New()

	for _, status := range []string{"approved", "rejected"} {
		assert.NoError(t, v.Validate(dto.ReviewApplicationRequest{Status: status}), status)
	}
	for _, status := range []string{"pending", "all", "APPROVED", "done"} {
		assert.Error(t, v.Validate(dto.ReviewApplicationRequest{Status: status}), status)
	}
}

func TestValidate_UrgencyAndContactStatusTags(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(dto.CreateContactRequestRequest{
		ProviderID:   1,
		Requirements: "Need a vendor for our data platform",
		Urgency:      "high",
	}))
	assert.Error(t, v.Validate(dto.CreateContactRequestRequest{
		ProviderID:   1,
		Requirements: "Need a vendor for our data platform",
		Urgency:      "urgent",
	}))
	// Urgency is optional.
	assert.NoError(t, v.Validate(dto.CreateContactRequestRequest{
		ProviderID:   1,
		Requirements: "Need a vendor for our data platform",
	}))

	assert.NoError(t, v.Validate(dto.UpdateContactStatusRequest{Status: "completed"}))
	assert.Error(t, v.Validate(dto.UpdateContactStatusRequest{Status: "archived"}))
}
