package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Video struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string    `gorm:"size:255;not null;index" json:"title"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	VideoURL        string    `gorm:"size:512;not null" json:"video_url"`
	ThumbnailURL    string    `gorm:"size:512;not null" json:"thumbnail_url"`
	DurationSeconds float64   `gorm:"default:0" json:"duration_seconds"`
	Views           int64     `gorm:"default:0" json:"views"`
	IsPublished     bool      `gorm:"default:true" json:"is_published"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Owner           User      `gorm:"foreignKey:OwnerID" json:"-"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
