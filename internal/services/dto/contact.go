package dto

import "time"

type CreateContactRequestRequest struct {
	ProviderID    uint       `json:"provider_id" binding:"required" validate:"required"`
	Requirements  string     `json:"requirements" binding:"required" validate:"required,min=10,max=5000"`
	PreferredDate *time.Time `json:"preferred_date"`
	TimeSlot      string     `json:"time_slot" validate:"omitempty,max=50"`
	Urgency       string     `json:"urgency" validate:"omitempty,is-urgency"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,is-contact-status"`
	Notes  string `json:"notes" validate:"omitempty,max=5000"`
}
