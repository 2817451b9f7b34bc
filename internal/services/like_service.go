package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/playtube/playtube-backend/internal/apperr"
	"github.com/playtube/playtube-backend/internal/dto"
	"github.com/playtube/playtube-backend/internal/models"
)

type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

func (s *LikeService) ToggleVideoLike(userID, videoID uuid.UUID) (bool, error) {
	return s.toggle(userID, models.LikeTargetVideo, videoID, &models.Video{})
}

func (s *LikeService) ToggleCommentLike(userID, commentID uuid.UUID) (bool, error) {
	return s.toggle(userID, models.LikeTargetComment, commentID, &models.Comment{})
}

func (s *LikeService) ToggleTweetLike(userID, tweetID uuid.UUID) (bool, error) {
	return s.toggle(userID, models.LikeTargetTweet, tweetID, &models.Tweet{})
}

// toggle removes an existing like for (user, kind, target) or creates one.
// Returns whether the target is liked after the call. The check-then-write
// pair is not transactional; two concurrent toggles on the same pair can
// race, a documented limitation.
func (s *LikeService) toggle(userID uuid.UUID, kind models.LikeTarget, targetID uuid.UUID, target interface{}) (bool, error) {
	if err := s.db.First(target, "id = ?", targetID).Error; err != nil {
		if errNotFound(err) {
			return false, apperr.New(apperr.NotFound, string(kind)+" not found")
		}
		return false, err
	}

	var existing models.Like
	err := s.db.Where("liked_by_id = ? AND target_kind = ? AND target_id = ?",
		userID, kind, targetID).First(&existing).Error
	if err == nil {
		if err := s.db.Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errNotFound(err) {
		return false, err
	}

	like, err := models.NewLike(userID, kind, targetID)
	if err != nil {
		return false, err
	}
	if err := s.db.Create(like).Error; err != nil {
		return false, err
	}
	return true, nil
}

// LikedVideos joins this user's video likes with the videos they point at.
// Likes whose video has since been deleted are dropped from the result.
func (s *LikeService) LikedVideos(userID uuid.UUID) ([]dto.LikedVideo, error) {
	var rows []dto.LikedVideo
	err := s.db.Model(&models.Like{}).
		Joins("JOIN videos ON videos.id = likes.target_id").
		Where("likes.liked_by_id = ? AND likes.target_kind = ?", userID, models.LikeTargetVideo).
		Select("likes.id AS like_id, videos.id AS video_id, videos.title, " +
			"videos.thumbnail_url AS thumbnail_url, videos.video_url AS video_url, " +
			"videos.duration_seconds, videos.views, likes.created_at AS liked_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.LikedVideo{}
	}
	return rows, nil
}
