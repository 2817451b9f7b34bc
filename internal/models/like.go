package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/playtube/playtube-backend/internal/apperr"
)

// LikeTarget is the kind of entity a like points at.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// Like is a tagged reference to exactly one target entity. The kind is
// enforced at construction, not by convention.
type Like struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	LikedByID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_target" json:"liked_by_id"`
	TargetKind LikeTarget `gorm:"size:20;not null;uniqueIndex:idx_likes_user_target" json:"target_kind"`
	TargetID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_target;index" json:"target_id"`
	CreatedAt  time.Time  `json:"created_at"`
	LikedBy    User       `gorm:"foreignKey:LikedByID" json:"-"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// NewLike validates the target kind before the row can exist.
func NewLike(likedBy uuid.UUID, kind LikeTarget, targetID uuid.UUID) (*Like, error) {
	switch kind {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
	default:
		return nil, apperr.New(apperr.InvalidArgument, "invalid like target kind")
	}
	if likedBy == uuid.Nil || targetID == uuid.Nil {
		return nil, apperr.New(apperr.InvalidArgument, "like requires a user and a target")
	}
	return &Like{LikedByID: likedBy, TargetKind: kind, TargetID: targetID}, nil
}
