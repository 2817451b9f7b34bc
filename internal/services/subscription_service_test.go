package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtube/playtube-backend/internal/apperr"
)

func TestSubscriptionToggle(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)
	viewer := createUser(t, db, "viewer")
	channel := createUser(t, db, "channel")

	subscribed, err := svc.Toggle(viewer.ID, channel.ID)
	require.NoError(t, err)
	assert.True(t, subscribed)

	count, err := svc.SubscriberCount(channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Second toggle unsubscribes, landing back where we started.
	subscribed, err = svc.Toggle(viewer.ID, channel.ID)
	require.NoError(t, err)
	assert.False(t, subscribed)

	count, err = svc.SubscriberCount(channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSubscriptionToggle_SelfSubscribe(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)
	user := createUser(t, db, "loner")

	_, err := svc.Toggle(user.ID, user.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}

func TestSubscriptionToggle_UnknownChannel(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)
	viewer := createUser(t, db, "viewer")

	_, err := svc.Toggle(viewer.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestSubscribedChannelCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)
	viewer := createUser(t, db, "viewer")
	chanA := createUser(t, db, "channel_a")
	chanB := createUser(t, db, "channel_b")

	_, err := svc.Toggle(viewer.ID, chanA.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(viewer.ID, chanB.ID)
	require.NoError(t, err)

	count, err := svc.SubscribedChannelCount(viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// The other direction stays independent.
	count, err = svc.SubscriberCount(chanA.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
