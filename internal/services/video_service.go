package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/playtube/playtube-backend/internal/apperr"
	"github.com/playtube/playtube-backend/internal/models"
	"github.com/playtube/playtube-backend/internal/query"
)

type VideoService struct {
	db    *gorm.DB
	users *UserService
}

func NewVideoService(db *gorm.DB, users *UserService) *VideoService {
	return &VideoService{db: db, users: users}
}

// ListParams carries the free-form list query; page and limit are normalized
// by the pagination helper before use.
type ListParams struct {
	Search   string
	SortBy   string
	SortType string
	OwnerID  uuid.UUID
	Page     int
	Limit    int
}

func (s *VideoService) Publish(ownerID uuid.UUID, title, description, videoURL, thumbnailURL string, duration float64, isPublished bool) (*models.Video, error) {
	video := &models.Video{
		Title:           title,
		Description:     description,
		VideoURL:        videoURL,
		ThumbnailURL:    thumbnailURL,
		DurationSeconds: duration,
		IsPublished:     isPublished,
		OwnerID:         ownerID,
	}
	if err := s.db.Create(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

// List runs the video listing pipeline: match (search, owner), sort,
// paginate. Stage order is fixed so the count sees the same filter the page
// does.
func (s *VideoService) List(p ListParams) (query.Page[models.Video], error) {
	page, limit := query.NormalizePage(p.Page, p.Limit)

	base := s.db.Model(&models.Video{}).Scopes(query.TitleSearch(p.Search))
	if p.OwnerID != uuid.Nil {
		base = base.Scopes(query.OwnedBy(p.OwnerID))
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return query.Page[models.Video]{}, err
	}

	var videos []models.Video
	err := base.
		Scopes(query.SortBy(p.SortBy, p.SortType), query.Paginate(page, limit)).
		Find(&videos).Error
	if err != nil {
		return query.Page[models.Video]{}, err
	}

	return query.NewPage(videos, page, limit, total), nil
}

// Get returns a video and registers the view for viewerID: the view counter
// increments at most once per viewer per day, and the video is appended to
// the viewer's watch history.
func (s *VideoService) Get(videoID, viewerID uuid.UUID) (*models.Video, error) {
	video, err := s.find(videoID)
	if err != nil {
		return nil, err
	}

	if viewerID != uuid.Nil {
		if err := s.registerView(video, viewerID); err != nil {
			return nil, err
		}
		if err := s.users.AddToWatchHistory(viewerID, videoID); err != nil {
			return nil, err
		}
	}

	return video, nil
}

func (s *VideoService) registerView(video *models.Video, viewerID uuid.UUID) error {
	today := time.Now().UTC().Format("2006-01-02")

	var view models.VideoView
	err := s.db.Where("user_id = ? AND video_id = ?", viewerID, video.ID).First(&view).Error
	switch {
	case errNotFound(err):
		view = models.VideoView{UserID: viewerID, VideoID: video.ID, ViewedOn: today}
		if err := s.db.Create(&view).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	case view.ViewedOn == today:
		return nil
	default:
		if err := s.db.Model(&view).Update("viewed_on", today).Error; err != nil {
			return err
		}
	}

	if err := s.db.Model(video).Update("views", gorm.Expr("views + 1")).Error; err != nil {
		return err
	}
	video.Views++
	return nil
}

func (s *VideoService) Update(videoID, userID uuid.UUID, title, description, thumbnailURL string) (*models.Video, error) {
	video, err := s.find(videoID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner("video", video.OwnerID, userID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":       title,
		"description": description,
	}
	if thumbnailURL != "" {
		updates["thumbnail_url"] = thumbnailURL
	}
	if err := s.db.Model(video).Updates(updates).Error; err != nil {
		return nil, err
	}
	return video, nil
}

// Delete removes the video row only. Comments, likes and playlist references
// are left behind; there is no cascade.
func (s *VideoService) Delete(videoID, userID uuid.UUID) error {
	video, err := s.find(videoID)
	if err != nil {
		return err
	}
	if err := requireOwner("video", video.OwnerID, userID); err != nil {
		return err
	}
	return s.db.Delete(video).Error
}

func (s *VideoService) TogglePublish(videoID, userID uuid.UUID) (*models.Video, error) {
	video, err := s.find(videoID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner("video", video.OwnerID, userID); err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished
	if err := s.db.Model(video).Update("is_published", video.IsPublished).Error; err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) find(videoID uuid.UUID) (*models.Video, error) {
	var video models.Video
	if err := s.db.First(&video, "id = ?", videoID).Error; err != nil {
		if errNotFound(err) {
			return nil, apperr.New(apperr.NotFound, "video not found")
		}
		return nil, err
	}
	return &video, nil
}
