package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/playtube/playtube-backend/internal/apperr"
	"github.com/playtube/playtube-backend/internal/models"
)

type TweetService struct {
	db *gorm.DB
}

func NewTweetService(db *gorm.DB) *TweetService {
	return &TweetService{db: db}
}

func (s *TweetService) Create(ownerID uuid.UUID, content string) (*models.Tweet, error) {
	tweet := &models.Tweet{Content: content, OwnerID: ownerID}
	if err := s.db.Create(tweet).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *TweetService) ListByOwner(ownerID uuid.UUID) ([]models.Tweet, error) {
	var tweets []models.Tweet
	if err := s.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

func (s *TweetService) Update(tweetID, userID uuid.UUID, content string) (*models.Tweet, error) {
	tweet, err := s.find(tweetID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner("tweet", tweet.OwnerID, userID); err != nil {
		return nil, err
	}

	if err := s.db.Model(tweet).Update("content", content).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *TweetService) Delete(tweetID, userID uuid.UUID) error {
	tweet, err := s.find(tweetID)
	if err != nil {
		return err
	}
	if err := requireOwner("tweet", tweet.OwnerID, userID); err != nil {
		return err
	}
	return s.db.Delete(tweet).Error
}

func (s *TweetService) find(tweetID uuid.UUID) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := s.db.First(&tweet, "id = ?", tweetID).Error; err != nil {
		if errNotFound(err) {
			return nil, apperr.New(apperr.NotFound, "tweet not found")
		}
		return nil, err
	}
	return &tweet, nil
}
