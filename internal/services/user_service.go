package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/playtube/playtube-backend/internal/apperr"
	"github.com/playtube/playtube-backend/internal/dto"
	"github.com/playtube/playtube-backend/internal/models"
)

// UserService owns account reads/updates and the channel-profile and
// watch-history views.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errNotFound(err) {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateAccount(userID uuid.UUID, fullName, email string) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(user).Updates(map[string]interface{}{
		"full_name": fullName,
		"email":     strings.ToLower(strings.TrimSpace(email)),
	}).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateAvatar(userID uuid.UUID, avatarURL string) (*models.User, error) {
	return s.updateImage(userID, "avatar_url", avatarURL)
}

func (s *UserService) UpdateCoverImage(userID uuid.UUID, coverURL string) (*models.User, error) {
	return s.updateImage(userID, "cover_image_url", coverURL)
}

func (s *UserService) updateImage(userID uuid.UUID, column, url string) (*models.User, error) {
	if url == "" {
		return nil, apperr.New(apperr.InvalidArgument, "image URL is required")
	}
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(user).Update(column, url).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ChannelProfile assembles the denormalized channel view for a username.
// requestingUser may be uuid.Nil, in which case is_subscribed is false.
func (s *UserService) ChannelProfile(username string, requestingUser uuid.UUID) (*dto.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, apperr.New(apperr.InvalidArgument, "username is required")
	}

	var channel models.User
	if err := s.db.Where("username = ?", username).First(&channel).Error; err != nil {
		if errNotFound(err) {
			return nil, apperr.New(apperr.NotFound, "channel not found")
		}
		return nil, err
	}

	var subscriberCount, subscribedToCount int64
	if err := s.db.Model(&models.Subscription{}).
		Where("channel_id = ?", channel.ID).Count(&subscriberCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Subscription{}).
		Where("subscriber_id = ?", channel.ID).Count(&subscribedToCount).Error; err != nil {
		return nil, err
	}

	isSubscribed := false
	if requestingUser != uuid.Nil {
		var n int64
		if err := s.db.Model(&models.Subscription{}).
			Where("subscriber_id = ? AND channel_id = ?", requestingUser, channel.ID).
			Count(&n).Error; err != nil {
			return nil, err
		}
		isSubscribed = n > 0
	}

	return &dto.ChannelProfile{
		ID:                channel.ID,
		Username:          channel.Username,
		FullName:          channel.FullName,
		Email:             channel.Email,
		AvatarURL:         channel.AvatarURL,
		CoverImageURL:     channel.CoverImageURL,
		SubscriberCount:   subscriberCount,
		SubscribedToCount: subscribedToCount,
		IsSubscribed:      isSubscribed,
	}, nil
}

// AddToWatchHistory appends videoID to the user's watch history. Re-adding a
// video already present is a no-op, so history stays a deduplicated sequence
// in first-watch order.
func (s *UserService) AddToWatchHistory(userID, videoID uuid.UUID) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}

	id := videoID.String()
	for _, existing := range user.WatchHistory {
		if existing == id {
			return nil
		}
	}

	history := append(user.WatchHistory, id)
	// Read-modify-write without a transaction: concurrent appends can lose
	// an entry, a known limitation of this layer.
	return s.db.Model(user).Update("watch_history", datatypes.JSONSlice[string](history)).Error
}

// WatchHistory resolves the stored id sequence into videos with a
// single-object owner projection. Order follows the stored sequence, not
// video creation time.
func (s *UserService) WatchHistory(userID uuid.UUID) ([]dto.WatchHistoryEntry, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(user.WatchHistory))
	for _, raw := range user.WatchHistory {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return []dto.WatchHistoryEntry{}, nil
	}

	var rows []struct {
		ID              uuid.UUID
		Title           string
		Description     string
		VideoURL        string
		ThumbnailURL    string
		DurationSeconds float64
		Views           int64
		CreatedAt       time.Time
		OwnerUsername   string
		OwnerFullName   string
		OwnerAvatar     string
	}
	err = s.db.Model(&models.Video{}).
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("videos.id IN ?", ids).
		Select("videos.id, videos.title, videos.description, videos.video_url AS video_url, " +
			"videos.thumbnail_url AS thumbnail_url, videos.duration_seconds, videos.views, videos.created_at, " +
			"users.username AS owner_username, users.full_name AS owner_full_name, " +
			"users.avatar_url AS owner_avatar").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]dto.WatchHistoryEntry, len(rows))
	for _, r := range rows {
		byID[r.ID] = dto.WatchHistoryEntry{
			ID:              r.ID,
			Title:           r.Title,
			Description:     r.Description,
			VideoURL:        r.VideoURL,
			ThumbnailURL:    r.ThumbnailURL,
			DurationSeconds: r.DurationSeconds,
			Views:           r.Views,
			CreatedAt:       r.CreatedAt,
			Owner: dto.VideoOwner{
				Username:  r.OwnerUsername,
				FullName:  r.OwnerFullName,
				AvatarURL: r.OwnerAvatar,
			},
		}
	}

	// Reassemble in stored watch order; ids that no longer resolve to a
	// video are dropped.
	history := make([]dto.WatchHistoryEntry, 0, len(ids))
	for _, id := range ids {
		if entry, ok := byID[id]; ok {
			history = append(history, entry)
		}
	}
	return history, nil
}
