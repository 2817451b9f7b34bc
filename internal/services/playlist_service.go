package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/playtube/playtube-backend/internal/apperr"
	"github.com/playtube/playtube-backend/internal/models"
	"github.com/playtube/playtube-backend/internal/query"
)

type PlaylistService struct {
	db *gorm.DB
}

func NewPlaylistService(db *gorm.DB) *PlaylistService {
	return &PlaylistService{db: db}
}

func (s *PlaylistService) Create(ownerID uuid.UUID, name, description string) (*models.Playlist, error) {
	playlist := &models.Playlist{Name: name, Description: description, OwnerID: ownerID}
	if err := s.db.Create(playlist).Error; err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) Get(playlistID uuid.UUID) (*models.Playlist, error) {
	return s.find(playlistID)
}

// ListByOwner pages through a user's playlists. The unpaginated find-all the
// upstream system had is gone; every listing goes through the same
// pagination helper.
func (s *PlaylistService) ListByOwner(ownerID uuid.UUID, page, limit int) (query.Page[models.Playlist], error) {
	page, limit = query.NormalizePage(page, limit)

	base := s.db.Model(&models.Playlist{}).Scopes(query.OwnedBy(ownerID))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return query.Page[models.Playlist]{}, err
	}

	var playlists []models.Playlist
	err := base.Order("created_at DESC").Scopes(query.Paginate(page, limit)).Find(&playlists).Error
	if err != nil {
		return query.Page[models.Playlist]{}, err
	}

	return query.NewPage(playlists, page, limit, total), nil
}

// AddVideo appends a video at the end of the playlist. Adding a video that
// is already present fails with "already exists" and leaves the playlist
// unchanged.
func (s *PlaylistService) AddVideo(playlistID, videoID, userID uuid.UUID) error {
	playlist, err := s.find(playlistID)
	if err != nil {
		return err
	}
	if err := requireOwner("playlist", playlist.OwnerID, userID); err != nil {
		return err
	}

	var video models.Video
	if err := s.db.First(&video, "id = ?", videoID).Error; err != nil {
		if errNotFound(err) {
			return apperr.New(apperr.NotFound, "video not found")
		}
		return err
	}

	var existing models.PlaylistVideo
	err = s.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).First(&existing).Error
	if err == nil {
		return apperr.New(apperr.InvalidArgument, "video already exists in the playlist")
	}
	if !errNotFound(err) {
		return err
	}

	var maxPos int
	s.db.Model(&models.PlaylistVideo{}).
		Where("playlist_id = ?", playlistID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPos)

	entry := models.PlaylistVideo{
		PlaylistID: playlistID,
		VideoID:    videoID,
		Position:   maxPos + 1,
	}
	return s.db.Create(&entry).Error
}

func (s *PlaylistService) RemoveVideo(playlistID, videoID, userID uuid.UUID) error {
	playlist, err := s.find(playlistID)
	if err != nil {
		return err
	}
	if err := requireOwner("playlist", playlist.OwnerID, userID); err != nil {
		return err
	}

	var entry models.PlaylistVideo
	err = s.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).First(&entry).Error
	if errNotFound(err) {
		return apperr.New(apperr.InvalidArgument, "video does not exist in the playlist")
	}
	if err != nil {
		return err
	}

	return s.db.Delete(&entry).Error
}

func (s *PlaylistService) Update(playlistID, userID uuid.UUID, name, description string) (*models.Playlist, error) {
	playlist, err := s.find(playlistID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner("playlist", playlist.OwnerID, userID); err != nil {
		return nil, err
	}

	if err := s.db.Model(playlist).Updates(map[string]interface{}{
		"name":        name,
		"description": description,
	}).Error; err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) Delete(playlistID, userID uuid.UUID) error {
	playlist, err := s.find(playlistID)
	if err != nil {
		return err
	}
	if err := requireOwner("playlist", playlist.OwnerID, userID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		tx.Where("playlist_id = ?", playlistID).Delete(&models.PlaylistVideo{})
		return tx.Delete(playlist).Error
	})
}

// Videos returns the playlist's videos in insertion order.
func (s *PlaylistService) Videos(playlistID uuid.UUID) ([]models.Video, error) {
	if _, err := s.find(playlistID); err != nil {
		return nil, err
	}

	var videos []models.Video
	err := s.db.Model(&models.Video{}).
		Joins("JOIN playlist_videos ON playlist_videos.video_id = videos.id").
		Where("playlist_videos.playlist_id = ?", playlistID).
		Order("playlist_videos.position ASC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// ContainingVideo lists every playlist that includes the given video.
func (s *PlaylistService) ContainingVideo(videoID uuid.UUID) ([]models.Playlist, error) {
	var video models.Video
	if err := s.db.First(&video, "id = ?", videoID).Error; err != nil {
		if errNotFound(err) {
			return nil, apperr.New(apperr.NotFound, "video not found")
		}
		return nil, err
	}

	var playlists []models.Playlist
	err := s.db.Model(&models.Playlist{}).
		Joins("JOIN playlist_videos ON playlist_videos.playlist_id = playlists.id").
		Where("playlist_videos.video_id = ?", videoID).
		Find(&playlists).Error
	if err != nil {
		return nil, err
	}
	return playlists, nil
}

func (s *PlaylistService) find(playlistID uuid.UUID) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := s.db.First(&playlist, "id = ?", playlistID).Error; err != nil {
		if errNotFound(err) {
			return nil, apperr.New(apperr.NotFound, "playlist not found")
		}
		return nil, err
	}
	return &playlist, nil
}
