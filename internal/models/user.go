package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User mirrors the profile synchronized from the external identity provider.
// Interview logic only ever reads it.
type User struct {
	ID              string    `gorm:"primaryKey" json:"id"` // identity-provider subject, not necessarily a UUID
	Email           string    `gorm:"uniqueIndex" json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserWithPreferences is the shape returned by GET /api/auth/user.
type UserWithPreferences struct {
	User
	Preferences *UserPreferences `json:"preferences,omitempty"`
}
