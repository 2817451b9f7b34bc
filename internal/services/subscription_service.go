package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/playtube/playtube-backend/internal/apperr"
	"github.com/playtube/playtube-backend/internal/models"
)

type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

// Toggle subscribes userID to the channel, or unsubscribes when a
// subscription already exists. Returns whether the user is subscribed after
// the call. The find-then-write pair is not transactional; two concurrent
// toggles on the same pair can race, a documented limitation.
func (s *SubscriptionService) Toggle(userID, channelID uuid.UUID) (bool, error) {
	if userID == channelID {
		return false, apperr.New(apperr.InvalidArgument, "cannot subscribe to your own channel")
	}

	if _, err := s.findUser(channelID, "channel"); err != nil {
		return false, err
	}

	var existing models.Subscription
	err := s.db.Where("subscriber_id = ? AND channel_id = ?", userID, channelID).First(&existing).Error
	if err == nil {
		if err := s.db.Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errNotFound(err) {
		return false, err
	}

	sub := models.Subscription{SubscriberID: userID, ChannelID: channelID}
	if err := s.db.Create(&sub).Error; err != nil {
		return false, err
	}
	return true, nil
}

// SubscriberCount counts users subscribed to the channel.
func (s *SubscriptionService) SubscriberCount(channelID uuid.UUID) (int64, error) {
	if _, err := s.findUser(channelID, "channel"); err != nil {
		return 0, err
	}

	var count int64
	err := s.db.Model(&models.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

// SubscribedChannelCount counts channels the user is subscribed to.
func (s *SubscriptionService) SubscribedChannelCount(subscriberID uuid.UUID) (int64, error) {
	if _, err := s.findUser(subscriberID, "subscriber"); err != nil {
		return 0, err
	}

	var count int64
	err := s.db.Model(&models.Subscription{}).Where("subscriber_id = ?", subscriberID).Count(&count).Error
	return count, err
}

func (s *SubscriptionService) findUser(id uuid.UUID, role string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errNotFound(err) {
			return nil, apperr.New(apperr.NotFound, role+" not found")
		}
		return nil, err
	}
	return &user, nil
}
