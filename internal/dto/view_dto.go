package dto

import (
	"time"

	"github.com/google/uuid"
)

// CommentWithOwner is one row of the paginated video-comments view. Only the
// owner's username and avatar leave this path.
type CommentWithOwner struct {
	ID            uuid.UUID `json:"id"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	OwnerUsername string    `json:"owner_username"`
	OwnerAvatar   string    `json:"owner_avatar"`
}

// ChannelProfile is the denormalized channel view. The field set is a strict
// allow-list; nothing else on User may be added here.
type ChannelProfile struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	AvatarURL         string    `json:"avatar_url"`
	CoverImageURL     string    `json:"cover_image_url"`
	SubscriberCount   int64     `json:"subscriber_count"`
	SubscribedToCount int64     `json:"subscribed_to_count"`
	IsSubscribed      bool      `json:"is_subscribed"`
}

// VideoOwner is the single-object owner projection nested in video views.
type VideoOwner struct {
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

// WatchHistoryEntry is one resolved video in a user's watch history, in the
// order the user watched it.
type WatchHistoryEntry struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	VideoURL        string     `json:"video_url"`
	ThumbnailURL    string     `json:"thumbnail_url"`
	DurationSeconds float64    `json:"duration_seconds"`
	Views           int64      `json:"views"`
	CreatedAt       time.Time  `json:"created_at"`
	Owner           VideoOwner `json:"owner"`
}

// LikedVideo joins a like row with the full video it points at.
type LikedVideo struct {
	LikeID          uuid.UUID `json:"like_id"`
	VideoID         uuid.UUID `json:"video_id"`
	Title           string    `json:"title"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	VideoURL        string    `json:"video_url"`
	DurationSeconds float64   `json:"duration_seconds"`
	Views           int64     `json:"views"`
	LikedAt         time.Time `json:"liked_at"`
}

// ChannelStats holds the four dashboard aggregates. TotalLikes counts likes
// made by the channel user, matching the upstream system's behavior.
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalLikes       int64 `json:"total_likes"`
}
