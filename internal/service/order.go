package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cemention/cemention/internal/events"
	"github.com/cemention/cemention/internal/models"
	"github.com/cemention/cemention/internal/repo"
	"github.com/cemention/cemention/internal/transport"
	"github.com/cemention/cemention/pkg/logging"
)

const (
	gstRatePercent       = 18 // GST on cement
	cardSurchargePercent = 2  // applies to CARD payments only
)

type OrderService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

func newOrderNumber(now time.Time) string {
	u := uuid.New()
	return "ORD" + now.Format("20060102150405") + strings.ToUpper(hex.EncodeToString(u[:3]))
}

// CreateOrder turns the caller's cart into an immutable priced order.
//
// The cart's snapshotted unit prices are authoritative; products are
// re-fetched only for their display name, and lines whose product has been
// deleted since being added are dropped. The order insert and the cart
// clear are two independent writes: a crash in between leaves a stale cart
// behind, which is harmless after checkout.
func (s *OrderService) CreateOrder(ctx context.Context, user *models.User, req transport.OrderCreateRequest) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.create", "user_id", user.ID)

	if !req.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, req.PaymentMethod)
	}

	cart, err := s.Repo.CartByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	if _, err := s.Repo.AddressByIDForUser(ctx, req.DeliveryAddressID, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: delivery address", ErrNotFound)
		}
		return nil, err
	}

	var (
		items    []models.OrderItem
		subtotal int64
	)
	for _, it := range cart.Items {
		product, err := s.Repo.ProductByID(ctx, it.ProductID, false)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		lineTotal := int64(it.Quantity) * it.UnitPrice
		items = append(items, models.OrderItem{
			ProductID:   it.ProductID,
			ProductName: product.Name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   lineTotal,
		})
		subtotal += lineTotal
	}

	gst := subtotal * gstRatePercent / 100
	var surcharge int64
	if req.PaymentMethod == models.PaymentCard {
		surcharge = subtotal * cardSurchargePercent / 100
	}

	now := time.Now()
	order := &models.Order{
		ID:                uuid.NewString(),
		UserID:            user.ID,
		OrderNumber:       newOrderNumber(now),
		Items:             items,
		Subtotal:          subtotal,
		GSTAmount:         gst,
		SurchargeAmount:   surcharge,
		TotalAmount:       subtotal + gst + surcharge,
		PaymentMethod:     req.PaymentMethod,
		PaymentStatus:     models.PaymentPending,
		OrderStatus:       models.OrderPending,
		DeliveryAddressID: req.DeliveryAddressID,
	}

	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	if err := s.Repo.ReplaceCartItems(ctx, cart.ID, nil); err != nil {
		// Order exists, cart didn't clear. Log and move on: the cart has
		// no role after checkout.
		l.Warn("cart_clear_failed", "order_id", order.ID, "error", err)
	}

	if err := s.Producer.PublishEvent(ctx, events.TopicOrderEvents, order.ID, map[string]any{
		"type":         "order_created",
		"orderID":      order.ID,
		"orderNumber":  order.OrderNumber,
		"userID":       user.ID,
		"total_amount": order.TotalAmount,
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	l.Info("order_created", "order_number", order.OrderNumber, "total", order.TotalAmount)
	return order, nil
}

func (s *OrderService) MyOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.Repo.OrdersByUser(ctx, userID)
}

func (s *OrderService) GetOrder(ctx context.Context, id, userID string) (*models.Order, error) {
	order, err := s.Repo.OrderByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, err
	}
	return order, nil
}

// ConfirmPayment lets the user report an offline payment. It resets the
// payment status to PENDING for admin verification, never to RECEIVED.
func (s *OrderService) ConfirmPayment(ctx context.Context, id, userID string) (*transport.StatusResponse, error) {
	if _, err := s.Repo.OrderByIDForUser(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.Repo.UpdateOrderFields(ctx, id, map[string]any{
		"payment_status": models.PaymentPending,
	}); err != nil {
		return nil, err
	}
	return &transport.StatusResponse{
		Success: true,
		Message: "Payment confirmation submitted. Admin will verify.",
	}, nil
}

func (s *OrderService) CreateRequestOrder(ctx context.Context, user *models.User, req transport.RequestOrderCreateRequest) (*models.RequestOrder, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}
	if req.CementBrand == "" || req.DeliveryLocation == "" {
		return nil, fmt.Errorf("%w: cement_brand and delivery_location required", ErrValidation)
	}

	request := &models.RequestOrder{
		ID:                    uuid.NewString(),
		UserID:                user.ID,
		CementBrand:           req.CementBrand,
		Quantity:              req.Quantity,
		DeliveryLocation:      req.DeliveryLocation,
		Phone:                 req.Phone,
		PreferredDeliveryDate: req.PreferredDeliveryDate,
		Status:                models.RequestPending,
	}
	if err := s.Repo.CreateRequestOrder(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *OrderService) MyRequestOrders(ctx context.Context, userID string) ([]models.RequestOrder, error) {
	return s.Repo.RequestOrdersByUser(ctx, userID)
}
