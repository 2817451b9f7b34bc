package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/playtube/playtube-backend/internal/apperr"
	"github.com/playtube/playtube-backend/internal/dto"
	"github.com/playtube/playtube-backend/internal/models"
	"github.com/playtube/playtube-backend/internal/query"
)

// DashboardService assembles the channel-statistics view.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// ChannelStats computes four independent aggregates for a channel. A channel
// with no videos reports totalViews 0, never null. TotalLikes counts likes
// made by the channel user (not likes received), preserving the upstream
// system's semantics.
func (s *DashboardService) ChannelStats(channelID uuid.UUID) (*dto.ChannelStats, error) {
	var channel models.User
	if err := s.db.First(&channel, "id = ?", channelID).Error; err != nil {
		if errNotFound(err) {
			return nil, apperr.New(apperr.NotFound, "channel not found")
		}
		return nil, err
	}

	stats := &dto.ChannelStats{}

	if err := s.db.Model(&models.Video{}).
		Where("owner_id = ?", channelID).Count(&stats.TotalVideos).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Video{}).
		Where("owner_id = ?", channelID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&stats.TotalViews).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Subscription{}).
		Where("channel_id = ?", channelID).Count(&stats.TotalSubscribers).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Like{}).
		Where("liked_by_id = ?", channelID).Count(&stats.TotalLikes).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// ChannelVideos pages through a channel's uploads.
func (s *DashboardService) ChannelVideos(channelID uuid.UUID, page, limit int) (query.Page[models.Video], error) {
	var channel models.User
	if err := s.db.First(&channel, "id = ?", channelID).Error; err != nil {
		if errNotFound(err) {
			return query.Page[models.Video]{}, apperr.New(apperr.NotFound, "channel not found")
		}
		return query.Page[models.Video]{}, err
	}

	page, limit = query.NormalizePage(page, limit)

	base := s.db.Model(&models.Video{}).Scopes(query.OwnedBy(channelID))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return query.Page[models.Video]{}, err
	}

	var videos []models.Video
	err := base.Order("created_at DESC").Scopes(query.Paginate(page, limit)).Find(&videos).Error
	if err != nil {
		return query.Page[models.Video]{}, err
	}

	return query.NewPage(videos, page, limit, total), nil
}
