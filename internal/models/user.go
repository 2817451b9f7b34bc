package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is both an account and, when subscribed to, a channel.
// Username is stored lowercase; lookups normalize before comparing.
type User struct {
	ID            uuid.UUID                  `gorm:"type:uuid;primaryKey" json:"id"`
	Username      string                     `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email         string                     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FullName      string                     `gorm:"size:255;not null" json:"full_name"`
	Password      string                     `gorm:"not null" json:"-"`
	AvatarURL     string                     `gorm:"size:512;not null" json:"avatar_url"`
	CoverImageURL string                     `gorm:"size:512" json:"cover_image_url"`
	WatchHistory  datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"-"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
