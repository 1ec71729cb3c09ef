package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/electromart/marketplace-api/internal/api/metrics"
	"github.com/electromart/marketplace-api/internal/core/domain"
	"github.com/electromart/marketplace-api/internal/core/ports"
)

const sellerFeedLimit = 50

// UnreadCounter abstracts the per-seller unread-count cache (Redis). The
// cache is an optimization only: every method failure degrades to the
// database count.
type UnreadCounter interface {
	Get(ctx context.Context, sellerID string) (int64, bool, error)
	Set(ctx context.Context, sellerID string, count int64) error
	Invalidate(ctx context.Context, sellerID string) error
}

type notificationService struct {
	repo   ports.NotificationRepository
	unread UnreadCounter
	log    zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
func NewNotificationService(repo ports.NotificationRepository, unread UnreadCounter, log zerolog.Logger) ports.NotificationService {
	return &notificationService{repo: repo, unread: unread, log: log}
}

// NotifyContact records that a buyer wants to reach the seller. The seller's
// existence is not re-checked; a dangling seller id simply produces a
// notification nobody will ever fetch.
func (s *notificationService) NotifyContact(ctx context.Context, input ports.ContactInput) error {
	name := input.CustomerName
	if name == "" {
		name = domain.DefaultCustomerName
	}

	n := &domain.Notification{
		Type:         domain.NotificationTypeContact,
		SellerID:     input.SellerID,
		CustomerID:   input.CustomerID,
		CustomerName: name,
		ProductID:    input.ProductID,
		ProductName:  input.ProductName,
		Message:      domain.ContactMessage(input.CustomerName, input.ProductName),
		IsRead:       false,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	s.invalidate(ctx, input.SellerID)
	metrics.NotificationsCreatedTotal.Inc()
	s.log.Info().
		Str("seller_id", input.SellerID).
		Str("product", input.ProductName).
		Msg("contact notification created")

	return nil
}

func (s *notificationService) ListForSeller(ctx context.Context, sellerID string) ([]*domain.Notification, error) {
	return s.repo.ListBySeller(ctx, sellerID, sellerFeedLimit)
}

// MarkRead flips the unread flag on a caller-owned notification. Marking a
// foreign or already-read notification is a no-op, which keeps the operation
// idempotent.
func (s *notificationService) MarkRead(ctx context.Context, id, sellerID string) error {
	matched, err := s.repo.MarkRead(ctx, id, sellerID, time.Now().UTC())
	if err != nil {
		return err
	}
	if matched {
		s.invalidate(ctx, sellerID)
	}
	return nil
}

// UnreadCount serves the badge counter, read-through cached.
func (s *notificationService) UnreadCount(ctx context.Context, sellerID string) (int64, error) {
	if count, ok, err := s.unread.Get(ctx, sellerID); err != nil {
		s.log.Warn().Err(err).Str("seller_id", sellerID).Msg("unread cache read failed, falling back to db")
	} else if ok {
		return count, nil
	}

	count, err := s.repo.CountUnread(ctx, sellerID)
	if err != nil {
		return 0, err
	}

	if err := s.unread.Set(ctx, sellerID, count); err != nil {
		s.log.Warn().Err(err).Str("seller_id", sellerID).Msg("unread cache write failed")
	}
	return count, nil
}

func (s *notificationService) invalidate(ctx context.Context, sellerID string) {
	if err := s.unread.Invalidate(ctx, sellerID); err != nil {
		s.log.Warn().Err(err).Str("seller_id", sellerID).Msg("unread cache invalidation failed")
	}
}
