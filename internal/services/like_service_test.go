package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtube/playtube-backend/internal/apperr"
	"github.com/playtube/playtube-backend/internal/models"
)

func TestToggleVideoLike(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	owner := createUser(t, db, "alice")
	fan := createUser(t, db, "fan")
	video := createVideo(t, db, owner.ID, "video")

	liked, err := svc.ToggleVideoLike(fan.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = svc.ToggleVideoLike(fan.ID, video.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestToggleLike_UnknownTarget(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	fan := createUser(t, db, "fan")

	_, err := svc.ToggleVideoLike(fan.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	_, err = svc.ToggleCommentLike(fan.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	_, err = svc.ToggleTweetLike(fan.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestToggleLike_KindsAreIndependent(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	owner := createUser(t, db, "alice")
	fan := createUser(t, db, "fan")
	video := createVideo(t, db, owner.ID, "video")

	comments := NewCommentService(db)
	comment, err := comments.Add(video.ID, owner.ID, "hi")
	require.NoError(t, err)

	liked, err := svc.ToggleVideoLike(fan.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	// Liking a comment never toggles the video like off.
	liked, err = svc.ToggleCommentLike(fan.ID, comment.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Where("liked_by_id = ?", fan.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestLikedVideos(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	owner := createUser(t, db, "alice")
	fan := createUser(t, db, "fan")
	video := createVideo(t, db, owner.ID, "liked video")

	comments := NewCommentService(db)
	comment, err := comments.Add(video.ID, owner.ID, "hi")
	require.NoError(t, err)

	_, err = svc.ToggleVideoLike(fan.ID, video.ID)
	require.NoError(t, err)
	_, err = svc.ToggleCommentLike(fan.ID, comment.ID)
	require.NoError(t, err)

	rows, err := svc.LikedVideos(fan.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, video.ID, rows[0].VideoID)
	assert.Equal(t, "liked video", rows[0].Title)
}

func TestLikedVideos_DeletedVideoDropped(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	owner := createUser(t, db, "alice")
	fan := createUser(t, db, "fan")
	video := createVideo(t, db, owner.ID, "video")

	_, err := svc.ToggleVideoLike(fan.ID, video.ID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(video).Error)

	rows, err := svc.LikedVideos(fan.ID)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestNewLike_Validation(t *testing.T) {
	_, err := models.NewLike(uuid.New(), "channel", uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))

	_, err = models.NewLike(uuid.Nil, models.LikeTargetVideo, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}
