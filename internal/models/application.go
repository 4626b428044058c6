package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

// PartnerApplication is a prospective partner's expression of interest.
// Core fields are immutable after submission; only the review fields are
// mutated by an admin action.
type PartnerApplication struct {
	BaseModel
	PartnerName      string         `gorm:"not null" json:"partner_name"`
	OrganizationName string         `gorm:"not null" json:"organization_name"`
	Email            string         `gorm:"not null;index" json:"email"`
	Phone            string         `json:"phone,omitempty"`
	Website          string         `json:"website,omitempty"`
	Expertise        pq.StringArray `gorm:"type:text[]" json:"expertise"`
	Description      string         `gorm:"type:text" json:"description,omitempty"`
	Designation      string         `json:"designation,omitempty"`
	ExperienceYears  int            `json:"experience_years,omitempty"`
	Reason           string         `gorm:"type:text" json:"reason,omitempty"`
	AdditionalNotes  string         `gorm:"type:text" json:"additional_notes,omitempty"`

	ApplicationStatus ApplicationStatus `gorm:"type:varchar(20);default:'pending';index" json:"application_status"`

	// Review metadata
	ReviewerID  *uint      `json:"reviewer_id,omitempty"`
	ReviewNotes string     `gorm:"type:text" json:"review_notes,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
}

// NormalizeExpertise trims entries and drops empties, preserving order.
// The store boundary always persists the cleaned list.
func NormalizeExpertise(in []string) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		e = strings.TrimSpace(e)
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
