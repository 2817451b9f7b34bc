package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtube/playtube-backend/internal/apperr"
)

func TestTweetLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewTweetService(db)
	owner := createUser(t, db, "alice")
	intruder := createUser(t, db, "mallory")

	tweet, err := svc.Create(owner.ID, "hello world")
	require.NoError(t, err)

	_, err = svc.Update(tweet.ID, intruder.ID, "hijacked")
	require.Error(t, err)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	updated, err := svc.Update(tweet.ID, owner.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	err = svc.Delete(tweet.ID, intruder.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	require.NoError(t, svc.Delete(tweet.ID, owner.ID))

	err = svc.Delete(tweet.ID, owner.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestTweetListByOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewTweetService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := svc.Create(alice.ID, "mine")
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, "not mine")
	require.NoError(t, err)

	tweets, err := svc.ListByOwner(alice.ID)
	require.NoError(t, err)
	require.Len(t, tweets, 1)
	assert.Equal(t, "mine", tweets[0].Content)
}
