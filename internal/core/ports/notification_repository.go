package ports

import (
	"context"
	"time"

	"github.com/electromart/marketplace-api/internal/core/domain"
)

// NotificationRepository defines persistence operations for seller
// notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	// ListBySeller returns the seller's notifications newest-first, capped at
	// limit.
	ListBySeller(ctx context.Context, sellerID string, limit int) ([]*domain.Notification, error)
	// MarkRead flips the read flag on the notification, scoped to the owning
	// seller. It reports whether a document matched; marking a foreign or
	// unknown id matches nothing and is not an error.
	MarkRead(ctx context.Context, id, sellerID string, at time.Time) (bool, error)
	CountUnread(ctx context.Context, sellerID string) (int64, error)
}
