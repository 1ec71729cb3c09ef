package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electromart/marketplace-api/internal/core/domain"
	"github.com/electromart/marketplace-api/internal/core/ports"
)

// NotificationHandler serves the seller's inbox and the buyer contact action.
type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

type contactRequest struct {
	SellerID     string `json:"sellerId"     validate:"required"`
	ProductName  string `json:"productName"  validate:"required"`
	ProductID    string `json:"productId"`
	CustomerName string `json:"customerName"`
}

type unreadCountResponse struct {
	Count int64 `json:"count"`
}

// Contact handles POST /api/notifications/whatsapp-contact — records that the
// caller wants to reach a seller about a product.
//
// @Summary      Notify a seller of a contact request
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      contactRequest  true  "Contact details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/notifications/whatsapp-contact [post]
func (h *NotificationHandler) Contact(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.notificationService.NotifyContact(c.Request().Context(), ports.ContactInput{
		SellerID:     req.SellerID,
		CustomerID:   userID,
		CustomerName: req.CustomerName,
		ProductID:    req.ProductID,
		ProductName:  req.ProductName,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Notification sent successfully"})
}

// ListForSeller handles GET /api/notifications/seller — the caller's inbox,
// newest first, capped at 50.
//
// @Summary      List own notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Notification
// @Failure      401  {object}  messageResponse
// @Router       /api/notifications/seller [get]
func (h *NotificationHandler) ListForSeller(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	notifications, err := h.notificationService.ListForSeller(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if notifications == nil {
		notifications = []*domain.Notification{}
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkRead handles PUT /api/notifications/:id/read. Marking a foreign,
// unknown, or already-read notification succeeds without effect.
//
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.notificationService.MarkRead(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Notification marked as read"})
}

// UnreadCount handles GET /api/notifications/unread-count — the badge
// counter.
//
// @Summary      Count own unread notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  unreadCountResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	count, err := h.notificationService.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unreadCountResponse{Count: count})
}
