package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  uint           `gorm:"not null;index" json:"user_id"`
	Type    string         `gorm:"type:varchar(50);not null" json:"type"`
	Title   string         `gorm:"not null" json:"title"`
	Message string         `gorm:"type:text" json:"message"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"` // {"application_id": 1, ...}
	Read    bool           `gorm:"default:false;index" json:"read"`
}

const (
	NotificationApplicationReceived = "application_received"
	NotificationApplicationReviewed = "application_reviewed"
	NotificationContactRequest      = "contact_request"
)

// SetData marshals an arbitrary payload into the JSON column.
func (n *Notification) SetData(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	n.Data = datatypes.JSON(data)
	return nil
}
