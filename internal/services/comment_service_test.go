package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtube/playtube-backend/internal/apperr"
)

func TestCommentListForVideo_Empty(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	owner := createUser(t, db, "alice")
	video := createVideo(t, db, owner.ID, "first upload")

	page, err := svc.ListForVideo(video.ID, 1, 10)
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.Equal(t, 1, page.Page)
}

func TestCommentListForVideo_PageBeyondEnd(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	owner := createUser(t, db, "alice")
	commenter := createUser(t, db, "bob")
	video := createVideo(t, db, owner.ID, "popular video")

	for i := 0; i < 5; i++ {
		_, err := svc.Add(video.ID, commenter.ID, fmt.Sprintf("comment %d", i))
		require.NoError(t, err)
	}

	page, err := svc.ListForVideo(video.ID, 3, 10)
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, int64(5), page.TotalCount)
}

func TestCommentListForVideo_OwnerProjection(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	owner := createUser(t, db, "alice")
	commenter := createUser(t, db, "bob")
	video := createVideo(t, db, owner.ID, "video")

	_, err := svc.Add(video.ID, commenter.ID, "nice one")
	require.NoError(t, err)

	page, err := svc.ListForVideo(video.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	assert.Equal(t, "nice one", page.Items[0].Content)
	assert.Equal(t, "bob", page.Items[0].OwnerUsername)
	assert.Equal(t, commenter.AvatarURL, page.Items[0].OwnerAvatar)
}

func TestCommentAdd_UnknownVideo(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	commenter := createUser(t, db, "bob")

	_, err := svc.Add(uuid.New(), commenter.ID, "into the void")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestCommentUpdate_Ownership(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	owner := createUser(t, db, "alice")
	commenter := createUser(t, db, "bob")
	intruder := createUser(t, db, "mallory")
	video := createVideo(t, db, owner.ID, "video")

	comment, err := svc.Add(video.ID, commenter.ID, "original")
	require.NoError(t, err)

	_, err = svc.Update(comment.ID, intruder.ID, "hijacked")
	require.Error(t, err)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	updated, err := svc.Update(comment.ID, commenter.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
}

func TestCommentDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	owner := createUser(t, db, "alice")
	video := createVideo(t, db, owner.ID, "video")

	comment, err := svc.Add(video.ID, owner.ID, "self comment")
	require.NoError(t, err)

	intruder := createUser(t, db, "mallory")
	err = svc.Delete(comment.ID, intruder.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	require.NoError(t, svc.Delete(comment.ID, owner.ID))

	err = svc.Delete(comment.ID, owner.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
