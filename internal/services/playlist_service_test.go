package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtube/playtube-backend/internal/apperr"
)

func TestPlaylistAddVideo_Duplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaylistService(db)
	owner := createUser(t, db, "alice")
	video := createVideo(t, db, owner.ID, "video")

	playlist, err := svc.Create(owner.ID, "favorites", "the good ones")
	require.NoError(t, err)

	require.NoError(t, svc.AddVideo(playlist.ID, video.ID, owner.ID))

	err = svc.AddVideo(playlist.ID, video.ID, owner.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))

	videos, err := svc.Videos(playlist.ID)
	require.NoError(t, err)
	assert.Len(t, videos, 1)
}

func TestPlaylistVideos_InsertionOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaylistService(db)
	owner := createUser(t, db, "alice")

	videoC := createVideo(t, db, owner.ID, "C")
	videoA := createVideo(t, db, owner.ID, "A")
	videoB := createVideo(t, db, owner.ID, "B")

	playlist, err := svc.Create(owner.ID, "mix", "")
	require.NoError(t, err)

	require.NoError(t, svc.AddVideo(playlist.ID, videoC.ID, owner.ID))
	require.NoError(t, svc.AddVideo(playlist.ID, videoA.ID, owner.ID))
	require.NoError(t, svc.AddVideo(playlist.ID, videoB.ID, owner.ID))

	videos, err := svc.Videos(playlist.ID)
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, videoC.ID, videos[0].ID)
	assert.Equal(t, videoA.ID, videos[1].ID)
	assert.Equal(t, videoB.ID, videos[2].ID)
}

func TestPlaylistRemoveVideo_Missing(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaylistService(db)
	owner := createUser(t, db, "alice")
	video := createVideo(t, db, owner.ID, "video")

	playlist, err := svc.Create(owner.ID, "favorites", "")
	require.NoError(t, err)

	err = svc.RemoveVideo(playlist.ID, video.ID, owner.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}

func TestPlaylistOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaylistService(db)
	owner := createUser(t, db, "alice")
	intruder := createUser(t, db, "mallory")
	video := createVideo(t, db, owner.ID, "video")

	playlist, err := svc.Create(owner.ID, "favorites", "")
	require.NoError(t, err)

	err = svc.AddVideo(playlist.ID, video.ID, intruder.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	_, err = svc.Update(playlist.ID, intruder.ID, "renamed", "")
	require.Error(t, err)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	err = svc.Delete(playlist.ID, intruder.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
}

func TestPlaylistDelete_RemovesMembership(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaylistService(db)
	owner := createUser(t, db, "alice")
	video := createVideo(t, db, owner.ID, "video")

	playlist, err := svc.Create(owner.ID, "favorites", "")
	require.NoError(t, err)
	require.NoError(t, svc.AddVideo(playlist.ID, video.ID, owner.ID))

	require.NoError(t, svc.Delete(playlist.ID, owner.ID))

	_, err = svc.Get(playlist.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	playlists, err := svc.ContainingVideo(video.ID)
	require.NoError(t, err)
	assert.Empty(t, playlists)
}

func TestPlaylistListByOwner_Pagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaylistService(db)
	owner := createUser(t, db, "alice")

	for i := 0; i < 3; i++ {
		_, err := svc.Create(owner.ID, "list", "")
		require.NoError(t, err)
	}

	page, err := svc.ListByOwner(owner.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, int64(3), page.TotalCount)
}

func TestPlaylistContainingVideo(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaylistService(db)
	owner := createUser(t, db, "alice")
	video := createVideo(t, db, owner.ID, "video")

	first, err := svc.Create(owner.ID, "first", "")
	require.NoError(t, err)
	second, err := svc.Create(owner.ID, "second", "")
	require.NoError(t, err)
	_, err = svc.Create(owner.ID, "empty", "")
	require.NoError(t, err)

	require.NoError(t, svc.AddVideo(first.ID, video.ID, owner.ID))
	require.NoError(t, svc.AddVideo(second.ID, video.ID, owner.ID))

	playlists, err := svc.ContainingVideo(video.ID)
	require.NoError(t, err)
	assert.Len(t, playlists, 2)

	_, err = svc.ContainingVideo(uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
