package ports

import (
	"context"

	"github.com/electromart/marketplace-api/internal/core/domain"
)

// ContactInput is the DTO for a buyer→seller contact request.
type ContactInput struct {
	SellerID     string
	CustomerID   string
	CustomerName string
	ProductID    string
	ProductName  string
}

// NotificationService defines use-case operations for seller notifications.
type NotificationService interface {
	NotifyContact(ctx context.Context, input ContactInput) error
	ListForSeller(ctx context.Context, sellerID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, sellerID string) error
	UnreadCount(ctx context.Context, sellerID string) (int64, error)
}
