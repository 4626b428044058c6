package models

import "time"

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"index;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	IsActive     bool     `gorm:"default:true" json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`

	// Relations
	ProviderProfile *ProviderProfile     `gorm:"foreignKey:UserID" json:"-"`
	ResetTokens     []PasswordResetToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	RefreshTokens   []RefreshToken       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// PasswordResetToken is a single-use credential-setup token. At most one live
// token exists per user; the request path deletes prior rows before inserting.
type PasswordResetToken struct {
	BaseModel
	UserID  uint      `gorm:"not null;index" json:"user_id"`
	Token   string    `gorm:"not null;uniqueIndex" json:"-"`
	Expires time.Time `gorm:"not null" json:"expires"`
}

func (t *PasswordResetToken) Expired(now time.Time) bool {
	return now.After(t.Expires)
}

type RefreshToken struct {
	BaseModel
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
