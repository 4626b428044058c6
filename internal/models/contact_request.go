package models

import "time"

// ContactRequest is a seeker's inquiry to a provider.
type ContactRequest struct {
	BaseModel
	SeekerID      uint   `gorm:"not null;index" json:"seeker_id"`
	SeekerName    string `gorm:"not null" json:"seeker_name"`
	SeekerEmail   string `gorm:"not null" json:"seeker_email"`
	ProviderID    uint   `gorm:"not null;index" json:"provider_id"`
	ProviderName  string `json:"provider_name"`
	ProviderEmail string `json:"provider_email"`

	Requirements  string     `gorm:"type:text;not null" json:"requirements"`
	PreferredDate *time.Time `json:"preferred_date,omitempty"`
	TimeSlot      string     `json:"time_slot,omitempty"`

	Urgency ContactUrgency       `gorm:"type:varchar(10);default:'medium'" json:"urgency"`
	Status  ContactRequestStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Read    bool                 `gorm:"default:false" json:"read"`
	Notes   string               `gorm:"type:text" json:"notes,omitempty"`
}
