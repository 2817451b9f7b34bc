package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VideoView records the last day a user viewed a video. The view counter on
// Video is incremented at most once per user per day based on this row.
type VideoView struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_video_view_pair" json:"user_id"`
	VideoID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_video_view_pair" json:"video_id"`
	ViewedOn string    `gorm:"size:10;not null" json:"viewed_on"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *VideoView) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
