package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodieapp/backend/internal/model"
	"github.com/foodieapp/backend/internal/store"
)

func TestNotifyNewestFirst(t *testing.T) {
	svc := NewNotificationService(zerolog.Nop())

	svc.Notify("First", "first message", model.NotificationInfo, "")
	svc.Notify("Second", "second message", model.NotificationSuccess, "r1")

	feed := svc.List(model.NotificationsAll)
	require.Len(t, feed, 2)
	assert.Equal(t, "Second", feed[0].Title)
	assert.Equal(t, "First", feed[1].Title)
	assert.Equal(t, "r1", feed[0].RecipeID)
	assert.NotEmpty(t, feed[0].ID)
	assert.False(t, feed[0].Timestamp.IsZero())
}

func TestNotificationReadState(t *testing.T) {
	svc := NewNotificationService(zerolog.Nop())

	svc.Notify("A", "", model.NotificationInfo, "")
	svc.Notify("B", "", model.NotificationInfo, "")
	assert.Equal(t, 2, svc.UnreadCount())

	id := svc.List(model.NotificationsAll)[0].ID
	require.NoError(t, svc.MarkRead(id))
	assert.Equal(t, 1, svc.UnreadCount())

	read := svc.List(model.NotificationsRead)
	require.Len(t, read, 1)
	assert.Equal(t, id, read[0].ID)

	unread := svc.List(model.NotificationsUnread)
	require.Len(t, unread, 1)
	assert.NotEqual(t, id, unread[0].ID)

	require.NoError(t, svc.MarkUnread(id))
	assert.Equal(t, 2, svc.UnreadCount())

	assert.ErrorIs(t, svc.MarkRead("no-such-id"), ErrNotFound)
}

func TestNotificationDeleteAndClear(t *testing.T) {
	svc := NewNotificationService(zerolog.Nop())

	svc.Notify("A", "", model.NotificationInfo, "")
	svc.Notify("B", "", model.NotificationInfo, "")

	id := svc.List(model.NotificationsAll)[0].ID
	require.NoError(t, svc.Delete(id))
	feed := svc.List(model.NotificationsAll)
	require.Len(t, feed, 1)
	assert.Equal(t, "A", feed[0].Title)

	assert.ErrorIs(t, svc.Delete(id), ErrNotFound)

	svc.Clear()
	assert.Empty(t, svc.List(model.NotificationsAll))
	assert.Zero(t, svc.UnreadCount())
}

func TestRecipeMutationsFeedNotifications(t *testing.T) {
	ctx := context.Background()
	notifications := NewNotificationService(zerolog.Nop())

	st := store.New(store.NewMemoryKV(), zerolog.Nop())
	svc := NewRecipeService(st, notifications, zerolog.Nop())
	require.NoError(t, svc.Load(ctx))

	draft := testDraft()
	added, err := svc.AddRecipe(ctx, draft)
	require.NoError(t, err)

	feed := notifications.List(model.NotificationsAll)
	require.Len(t, feed, 1)
	assert.Equal(t, "Recipe Saved", feed[0].Title)
	assert.Equal(t, added.ID, feed[0].RecipeID)
	assert.Equal(t, model.NotificationSuccess, feed[0].Type)

	require.NoError(t, svc.RemoveRecipe(ctx, added.ID))
	feed = notifications.List(model.NotificationsAll)
	require.Len(t, feed, 2)
	assert.Equal(t, "Recipe Deleted", feed[0].Title)
	assert.Equal(t, model.NotificationInfo, feed[0].Type)
}
