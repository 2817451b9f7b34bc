package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtube/playtube-backend/internal/apperr"
	"github.com/playtube/playtube-backend/internal/models"
)

func TestChannelStats_EmptyChannel(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	channel := createUser(t, db, "newcomer")

	stats, err := svc.ChannelStats(channel.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalVideos)
	assert.Equal(t, int64(0), stats.TotalViews)
	assert.Equal(t, int64(0), stats.TotalSubscribers)
	assert.Equal(t, int64(0), stats.TotalLikes)
}

func TestChannelStats_Aggregates(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	channel := createUser(t, db, "creator")
	fan := createUser(t, db, "fan")

	v1 := createVideo(t, db, channel.ID, "one")
	v2 := createVideo(t, db, channel.ID, "two")
	require.NoError(t, db.Model(v1).Update("views", 100).Error)
	require.NoError(t, db.Model(v2).Update("views", 50).Error)

	require.NoError(t, db.Create(&models.Subscription{SubscriberID: fan.ID, ChannelID: channel.ID}).Error)

	// TotalLikes counts likes the channel user made, not likes received.
	otherVideo := createVideo(t, db, fan.ID, "someone else's")
	likes := NewLikeService(db)
	_, err := likes.ToggleVideoLike(channel.ID, otherVideo.ID)
	require.NoError(t, err)
	_, err = likes.ToggleVideoLike(fan.ID, v1.ID)
	require.NoError(t, err)

	stats, err := svc.ChannelStats(channel.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalVideos)
	assert.Equal(t, int64(150), stats.TotalViews)
	assert.Equal(t, int64(1), stats.TotalSubscribers)
	assert.Equal(t, int64(1), stats.TotalLikes)
}

func TestChannelStats_UnknownChannel(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	_, err := svc.ChannelStats(uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestChannelVideos_Pagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	channel := createUser(t, db, "creator")

	for i := 0; i < 12; i++ {
		createVideo(t, db, channel.ID, "video")
	}

	page, err := svc.ChannelVideos(channel.ID, 2, 10)
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, int64(12), page.TotalCount)
}
