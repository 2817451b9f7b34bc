package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/playtube/playtube-backend/internal/apperr"
	"github.com/playtube/playtube-backend/internal/dto"
	"github.com/playtube/playtube-backend/internal/models"
	"github.com/playtube/playtube-backend/internal/query"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) Add(videoID, ownerID uuid.UUID, content string) (*models.Comment, error) {
	var video models.Video
	if err := s.db.First(&video, "id = ?", videoID).Error; err != nil {
		if errNotFound(err) {
			return nil, apperr.New(apperr.NotFound, "video not found")
		}
		return nil, err
	}

	comment := &models.Comment{
		Content: content,
		OwnerID: ownerID,
		VideoID: videoID,
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Update(commentID, userID uuid.UUID, content string) (*models.Comment, error) {
	comment, err := s.find(commentID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner("comment", comment.OwnerID, userID); err != nil {
		return nil, err
	}

	if err := s.db.Model(comment).Update("content", content).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(commentID, userID uuid.UUID) error {
	comment, err := s.find(commentID)
	if err != nil {
		return err
	}
	if err := requireOwner("comment", comment.OwnerID, userID); err != nil {
		return err
	}
	return s.db.Delete(comment).Error
}

// ListForVideo assembles the paginated comments view: match by video, join
// the owner with a minimal projection, paginate. A valid video id with zero
// comments yields an empty page, not an error. No sort is applied; rows come
// back in the store's natural order, which this view deliberately does not
// promise to be chronological.
func (s *CommentService) ListForVideo(videoID uuid.UUID, page, limit int) (query.Page[dto.CommentWithOwner], error) {
	page, limit = query.NormalizePage(page, limit)

	var total int64
	if err := s.db.Model(&models.Comment{}).
		Scopes(query.Match("video_id", videoID)).
		Count(&total).Error; err != nil {
		return query.Page[dto.CommentWithOwner]{}, err
	}

	var comments []dto.CommentWithOwner
	err := s.db.Model(&models.Comment{}).
		Scopes(query.Match("video_id", videoID)).
		Joins("JOIN users ON users.id = comments.owner_id").
		Select("comments.id, comments.content, comments.created_at, "+
			"users.username AS owner_username, users.avatar_url AS owner_avatar").
		Scopes(query.Paginate(page, limit)).
		Scan(&comments).Error
	if err != nil {
		return query.Page[dto.CommentWithOwner]{}, err
	}

	return query.NewPage(comments, page, limit, total), nil
}

func (s *CommentService) find(commentID uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, "id = ?", commentID).Error; err != nil {
		if errNotFound(err) {
			return nil, apperr.New(apperr.NotFound, "comment not found")
		}
		return nil, err
	}
	return &comment, nil
}
