package dto

import "techmista_backend/internal/models"

// ProviderProfileResponse is a provider profile augmented with expertise
// read from the linked application. IsNew and FromApplication are only
// meaningful on the ensure-profile path.
type ProviderProfileResponse struct {
	Profile         models.ProviderProfile `json:"profile"`
	Expertise       []string               `json:"expertise"`
	IsNew           bool                   `json:"is_new,omitempty"`
	FromApplication bool                   `json:"is_from_application,omitempty"`
}

// AccountCreationResult is what account materialization from an approved
// application yields.
type AccountCreationResult struct {
	UserID   uint   `json:"user_id"`
	ResetURL string `json:"reset_url"`
}

type ProviderListResponse struct {
	Providers []ProviderProfileResponse `json:"providers"`
	Total     int64                     `json:"total"`
	Page      int                       `json:"page"`
	PageSize  int                       `json:"page_size"`
}
