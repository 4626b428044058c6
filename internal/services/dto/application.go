package dto

type SubmitApplicationRequest struct {
	PartnerName      string   `json:"partner_name" binding:"required" validate:"required,min=2,max=100"`
	OrganizationName string   `json:"organization_name" binding:"required" validate:"required,min=2,max=200"`
	Email            string   `json:"email" binding:"required" validate:"required,email"`
	Phone            string   `json:"phone" validate:"omitempty,max=30"`
	Website          string   `json:"website" validate:"omitempty,url"`
	Expertise        []string `json:"expertise" validate:"omitempty,dive,min=1"`
	Description      string   `json:"description" validate:"omitempty,max=5000"`
	Designation      string   `json:"designation" validate:"omitempty,max=100"`
	ExperienceYears  int      `json:"experience_years" validate:"omitempty,min=0,max=80"`
	Reason           string   `json:"reason" validate:"omitempty,max=5000"`
	AdditionalNotes  string   `json:"additional_notes" validate:"omitempty,max=5000"`
}

type ReviewApplicationRequest struct {
	Status      string `json:"status" binding:"required" validate:"required,is-review-status"`
	ReviewNotes string `json:"review_notes" validate:"omitempty,max=5000"`
}

// ReviewApplicationResult reports the outcome of a review transition. For an
// approval, ResetURL carries the password-setup link produced for the new
// provider account.
type ReviewApplicationResult struct {
	Success  bool   `json:"success"`
	ResetURL string `json:"reset_url,omitempty"`
}
