package notify

import (
	"context"
	"errors"
	"testing"

	model "skinswap/internal/models"
	"skinswap/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_DeliversToStore(t *testing.T) {
	t.Parallel()

	store := repository.NewMemoryRepo()
	d := NewDispatcher(store, 4)

	for _, kind := range []model.NotificationType{model.NotifyOfferReceived, model.NotifyOfferDeclined} {
		require.True(t, d.Notify(model.Notification{UserID: "alice", Type: kind, ListingID: "l1"}))
	}
	d.Close()

	feed, err := store.ListNotifications(context.Background(), "alice", true)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	for _, n := range feed {
		require.NotEmpty(t, n.NotificationID)
		require.False(t, n.CreatedAt.IsZero())
	}
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := repository.NewMockNotificationStore(ctrl)

	release := make(chan struct{})
	store.EXPECT().SaveNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, model.Notification) error {
			<-release
			return nil
		}).
		AnyTimes()

	d := NewDispatcher(store, 1)

	// the worker may hold one notification and the queue one more
	accepted := 0
	for i := 0; i < 5; i++ {
		if d.Notify(model.Notification{UserID: "bob", Type: model.NotifyOfferAccepted, ListingID: "l1"}) {
			accepted++
		}
	}
	require.GreaterOrEqual(t, accepted, 1)
	require.LessOrEqual(t, accepted, 2)

	close(release)
	d.Close()
}

func TestDispatcher_StoreErrorIsLogged(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := repository.NewMockNotificationStore(ctrl)
	store.EXPECT().SaveNotification(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(1)

	d := NewDispatcher(store, 1)
	require.True(t, d.Notify(model.Notification{UserID: "bob", Type: model.NotifyListingCanceled, ListingID: "l1"}))
	d.Close()
}

func TestDispatcher_NotifyAfterClose(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(repository.NewMemoryRepo(), 0)
	d.Close()
	d.Close()

	require.False(t, d.Notify(model.Notification{UserID: "alice", Type: model.NotifyOfferReceived}))
}
