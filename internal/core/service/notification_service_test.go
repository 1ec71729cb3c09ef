package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/electromart/marketplace-api/internal/core/domain"
	"github.com/electromart/marketplace-api/internal/core/ports"
)

type stubNotificationRepo struct {
	created []*domain.Notification

	listVal   []*domain.Notification
	listLimit int

	markMatched bool
	markErr     error
	markCalls   int

	unreadVal   int64
	unreadErr   error
	unreadCalls int
}

func (r *stubNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	copy := *n
	r.created = append(r.created, &copy)
	return nil
}

func (r *stubNotificationRepo) ListBySeller(_ context.Context, _ string, limit int) ([]*domain.Notification, error) {
	r.listLimit = limit
	return r.listVal, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, _, _ string, _ time.Time) (bool, error) {
	r.markCalls++
	return r.markMatched, r.markErr
}

func (r *stubNotificationRepo) CountUnread(_ context.Context, _ string) (int64, error) {
	r.unreadCalls++
	return r.unreadVal, r.unreadErr
}

type stubUnreadCounter struct {
	value  int64
	cached bool
	getErr error
	setErr error

	setTo       []int64
	invalidated []string
}

func (c *stubUnreadCounter) Get(_ context.Context, _ string) (int64, bool, error) {
	if c.getErr != nil {
		return 0, false, c.getErr
	}
	return c.value, c.cached, nil
}

func (c *stubUnreadCounter) Set(_ context.Context, _ string, count int64) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.setTo = append(c.setTo, count)
	return nil
}

func (c *stubUnreadCounter) Invalidate(_ context.Context, sellerID string) error {
	c.invalidated = append(c.invalidated, sellerID)
	return nil
}

func TestNotificationService_NotifyContact_DefaultsCustomerName(t *testing.T) {
	repo := &stubNotificationRepo{}
	counter := &stubUnreadCounter{}
	svc := NewNotificationService(repo, counter, zerolog.Nop())

	err := svc.NotifyContact(context.Background(), ports.ContactInput{
		SellerID:    "seller_1",
		CustomerID:  "user_9",
		ProductName: "SG90 Servo",
	})
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(repo.created))
	}

	n := repo.created[0]
	if n.CustomerName != domain.DefaultCustomerName {
		t.Fatalf("expected default customer name, got %q", n.CustomerName)
	}
	if n.Type != domain.NotificationTypeContact {
		t.Fatalf("unexpected type: %q", n.Type)
	}
	if n.Message != `A customer wants to talk to you on WhatsApp about "SG90 Servo"` {
		t.Fatalf("unexpected message: %q", n.Message)
	}
	if n.IsRead {
		t.Fatalf("new notification must start unread")
	}
}

func TestNotificationService_NotifyContact_InvalidatesCache(t *testing.T) {
	repo := &stubNotificationRepo{}
	counter := &stubUnreadCounter{}
	svc := NewNotificationService(repo, counter, zerolog.Nop())

	err := svc.NotifyContact(context.Background(), ports.ContactInput{
		SellerID:     "seller_1",
		CustomerID:   "user_9",
		CustomerName: "Mallory",
		ProductName:  "Arduino Uno",
	})
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if len(counter.invalidated) != 1 || counter.invalidated[0] != "seller_1" {
		t.Fatalf("cache not invalidated: %v", counter.invalidated)
	}
	if repo.created[0].Message != `Mallory wants to talk to you on WhatsApp about "Arduino Uno"` {
		t.Fatalf("unexpected message: %q", repo.created[0].Message)
	}
}

func TestNotificationService_ListForSeller_CapsFeed(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, &stubUnreadCounter{}, zerolog.Nop())

	if _, err := svc.ListForSeller(context.Background(), "seller_1"); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.listLimit != sellerFeedLimit {
		t.Fatalf("expected limit %d, got %d", sellerFeedLimit, repo.listLimit)
	}
}

func TestNotificationService_MarkRead_Matched(t *testing.T) {
	repo := &stubNotificationRepo{markMatched: true}
	counter := &stubUnreadCounter{}
	svc := NewNotificationService(repo, counter, zerolog.Nop())

	if err := svc.MarkRead(context.Background(), "n1", "seller_1"); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if len(counter.invalidated) != 1 {
		t.Fatalf("cache not invalidated: %v", counter.invalidated)
	}
}

func TestNotificationService_MarkRead_UnmatchedIsNoOp(t *testing.T) {
	repo := &stubNotificationRepo{markMatched: false}
	counter := &stubUnreadCounter{}
	svc := NewNotificationService(repo, counter, zerolog.Nop())

	// Foreign or unknown ids match nothing; the call still succeeds and the
	// cached count stays valid.
	if err := svc.MarkRead(context.Background(), "someone-elses", "seller_1"); err != nil {
		t.Fatalf("mark read should be a no-op, got %v", err)
	}
	if len(counter.invalidated) != 0 {
		t.Fatalf("cache should not be invalidated: %v", counter.invalidated)
	}
}

func TestNotificationService_UnreadCount_CacheHit(t *testing.T) {
	repo := &stubNotificationRepo{unreadVal: 99}
	counter := &stubUnreadCounter{value: 7, cached: true}
	svc := NewNotificationService(repo, counter, zerolog.Nop())

	count, err := svc.UnreadCount(context.Background(), "seller_1")
	if err != nil {
		t.Fatalf("unread count failed: %v", err)
	}
	if count != 7 {
		t.Fatalf("expected cached 7, got %d", count)
	}
	if repo.unreadCalls != 0 {
		t.Fatalf("db should not be hit on a cache hit")
	}
}

func TestNotificationService_UnreadCount_CacheMissPopulates(t *testing.T) {
	repo := &stubNotificationRepo{unreadVal: 3}
	counter := &stubUnreadCounter{}
	svc := NewNotificationService(repo, counter, zerolog.Nop())

	count, err := svc.UnreadCount(context.Background(), "seller_1")
	if err != nil {
		t.Fatalf("unread count failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3, got %d", count)
	}
	if len(counter.setTo) != 1 || counter.setTo[0] != 3 {
		t.Fatalf("cache not populated: %v", counter.setTo)
	}
}

func TestNotificationService_UnreadCount_CacheOutageFallsBack(t *testing.T) {
	repo := &stubNotificationRepo{unreadVal: 5}
	counter := &stubUnreadCounter{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	svc := NewNotificationService(repo, counter, zerolog.Nop())

	count, err := svc.UnreadCount(context.Background(), "seller_1")
	if err != nil {
		t.Fatalf("cache outage must not fail the request, got %v", err)
	}
	if count != 5 {
		t.Fatalf("expected db fallback 5, got %d", count)
	}
}
