package models

import (
	"time"

	"github.com/lib/pq"
)

// ProviderProfile is a solution provider's public-facing record. Expertise is
// not stored here; it is read at query time from the linked application.
type ProviderProfile struct {
	BaseModel
	UserID        *uint          `gorm:"uniqueIndex" json:"user_id,omitempty"`
	ApplicationID *uint          `gorm:"index" json:"application_id,omitempty"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `gorm:"type:text" json:"description,omitempty"`
	Email         string         `gorm:"not null" json:"email"`
	Website       string         `json:"website,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	LogoURL       string         `json:"logo_url,omitempty"`
	RegionsServed pq.StringArray `gorm:"type:text[]" json:"regions_served"`

	VerificationStatus VerificationStatus `gorm:"type:varchar(20);default:'pending';index" json:"verification_status"`
	ApprovedDate       *time.Time         `json:"approved_date,omitempty"`
}

// DefaultRegions is applied when a profile is materialized without explicit
// region data.
func DefaultRegions() pq.StringArray {
	return pq.StringArray{"global"}
}
