package notify

import (
	"context"
	"fmt"

	"skinswap/internal/models"
	"skinswap/internal/repository"
	"skinswap/internal/tradeerrors"
)

// Feed serves a user's stored notifications
type Feed struct {
	store repository.NotificationStore
}

// NewFeed creates a Feed reading from store
func NewFeed(store repository.NotificationStore) *Feed {
	return &Feed{store: store}
}

// List returns the user's notifications, newest first
func (f *Feed) List(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", tradeerrors.ErrInvalidRequest)
	}

	feed, err := f.store.ListNotifications(ctx, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list notifications for user %s: %w", userID, err)
	}
	return feed, nil
}

// MarkRead marks all of the user's notifications read and returns how many changed
func (f *Feed) MarkRead(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, fmt.Errorf("service: %w - empty user ID", tradeerrors.ErrInvalidRequest)
	}

	n, err := f.store.MarkNotificationsRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to mark notifications read for user %s: %w", userID, err)
	}
	return n, nil
}
