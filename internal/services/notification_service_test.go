package services_test

import (
	"testing"

	"techmista_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_MarkReadScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createAdmin(t)
	env.submitApplication(t, "n@one.test", "One", "Nora")

	list, err := env.Notifications.List(admin.ID, true, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationApplicationReceived, list[0].Type)

	// Another user cannot mark it read.
	other := env.createSeeker(t, "oth@one.test")
	err = env.Notifications.MarkRead(list[0].ID, other.ID)
	require.Error(t, err)

	require.NoError(t, env.Notifications.MarkRead(list[0].ID, admin.ID))
	count, err := env.Notifications.CountUnread(admin.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createAdmin(t)
	env.submitApplication(t, "a@bulk.test", "Bulk A", "Ann")
	env.submitApplication(t, "b@bulk.test", "Bulk B", "Ben")

	count, err := env.Notifications.CountUnread(admin.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, env.Notifications.MarkAllRead(admin.ID))
	count, err = env.Notifications.CountUnread(admin.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	// unreadOnly filter hides the read rows, the full list keeps them.
	unread, err := env.Notifications.List(admin.ID, true, 10)
	require.NoError(t, err)
	assert.Empty(t, unread)

	all, err := env.Notifications.List(admin.ID, false, 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
