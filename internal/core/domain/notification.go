package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationTypeContact is the only notification type currently emitted:
// a buyer asked to reach the seller over WhatsApp.
const NotificationTypeContact = "whatsapp_contact"

// DefaultCustomerName is used when a buyer contacts a seller without a
// display name on file.
const DefaultCustomerName = "A customer"

// Notification is a message addressed to a seller. Its only state change is
// unread → read; there is no expiry and no further transition.
type Notification struct {
	ID           string     `json:"_id"`
	Type         string     `json:"type"`
	SellerID     string     `json:"sellerId"`
	CustomerID   string     `json:"customerId"`
	CustomerName string     `json:"customerName"`
	ProductID    string     `json:"productId,omitempty"`
	ProductName  string     `json:"productName"`
	Message      string     `json:"message"`
	IsRead       bool       `json:"isRead"`
	CreatedAt    time.Time  `json:"createdAt"`
	ReadAt       *time.Time `json:"readAt,omitempty"`
}

// ContactMessage renders the human-readable body shown in the seller's inbox.
func ContactMessage(customerName, productName string) string {
	if customerName == "" {
		customerName = DefaultCustomerName
	}
	return fmt.Sprintf("%s wants to talk to you on WhatsApp about %q", customerName, productName)
}
