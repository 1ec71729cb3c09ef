package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/electromart/marketplace-api/internal/core/domain"
)

const notificationsCollection = "notifications"

type NotificationRepository struct {
	coll *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{coll: db.Collection(notificationsCollection)}
}

type mongoNotification struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	Type         string              `bson:"type"`
	SellerID     primitive.ObjectID  `bson:"sellerId"`
	CustomerID   primitive.ObjectID  `bson:"customerId"`
	CustomerName string              `bson:"customerName"`
	ProductID    *primitive.ObjectID `bson:"productId,omitempty"`
	ProductName  string              `bson:"productName"`
	Message      string              `bson:"message"`
	IsRead       bool                `bson:"isRead"`
	CreatedAt    time.Time           `bson:"createdAt"`
	ReadAt       *time.Time          `bson:"readAt,omitempty"`
}

func (mn mongoNotification) toDomain() *domain.Notification {
	n := &domain.Notification{
		ID:           mn.ID.Hex(),
		Type:         mn.Type,
		SellerID:     mn.SellerID.Hex(),
		CustomerID:   mn.CustomerID.Hex(),
		CustomerName: mn.CustomerName,
		ProductName:  mn.ProductName,
		Message:      mn.Message,
		IsRead:       mn.IsRead,
		CreatedAt:    mn.CreatedAt,
		ReadAt:       mn.ReadAt,
	}
	if mn.ProductID != nil {
		n.ProductID = mn.ProductID.Hex()
	}
	return n
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	sellerID, err := primitive.ObjectIDFromHex(n.SellerID)
	if err != nil {
		return fmt.Errorf("notification seller id: %w", domain.ErrInvalidID)
	}
	customerID, err := primitive.ObjectIDFromHex(n.CustomerID)
	if err != nil {
		return fmt.Errorf("notification customer id: %w", domain.ErrInvalidID)
	}

	doc := mongoNotification{
		Type:         n.Type,
		SellerID:     sellerID,
		CustomerID:   customerID,
		CustomerName: n.CustomerName,
		ProductName:  n.ProductName,
		Message:      n.Message,
		IsRead:       n.IsRead,
		CreatedAt:    n.CreatedAt,
	}
	if n.ProductID != "" {
		productID, err := primitive.ObjectIDFromHex(n.ProductID)
		if err != nil {
			return fmt.Errorf("notification product id: %w", domain.ErrInvalidID)
		}
		doc.ProductID = &productID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListBySeller(ctx context.Context, sellerID string, limit int) ([]*domain.Notification, error) {
	oid, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{"sellerId": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer cur.Close(ctx)

	var notifications []*domain.Notification
	for cur.Next(ctx) {
		var mn mongoNotification
		if err := cur.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode notification: %w", err)
		}
		notifications = append(notifications, mn.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead sets the read flag on a notification owned by sellerID. A foreign,
// unknown, or malformed id matches nothing, which the service treats as a
// successful no-op.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, sellerID string, at time.Time) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	sellerOID, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "sellerId": sellerOID},
		bson.M{"$set": bson.M{"isRead": true, "readAt": at}},
	)
	if err != nil {
		return false, fmt.Errorf("mark notification read: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, sellerID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{"sellerId": oid, "isRead": false})
}

// EnsureIndexes creates the seller inbox and badge-count indexes.
func (r *NotificationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sellerId", Value: 1}, {Key: "isRead", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
