package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cemention/cemention/internal/models"
	"github.com/cemention/cemention/internal/repo"
	"github.com/cemention/cemention/internal/transport"
	"github.com/cemention/cemention/pkg/logging"
)

// MinOrderQuantity is the platform-wide floor in bags, not a per-product
// setting.
const MinOrderQuantity = 100

type CartService struct {
	Repo *repo.GormRepo
}

// GetCart never 404s: a user without a cart just sees an empty one.
func (s *CartService) GetCart(ctx context.Context, userID string) (*transport.CartResponse, error) {
	cart, err := s.Repo.CartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &transport.CartResponse{Items: []models.CartItem{}}, nil
		}
		return nil, err
	}

	var total int64
	for _, it := range cart.Items {
		total += int64(it.Quantity) * it.UnitPrice
	}
	return &transport.CartResponse{Items: cart.Items, Total: total}, nil
}

// AddToCart snapshots the caller's unit price at add time and merges by
// product id: an existing line gets its quantity and price replaced.
func (s *CartService) AddToCart(ctx context.Context, user *models.User, req transport.CartAddRequest) error {
	l := logging.FromContext(ctx).With("svc", "cart.add", "user_id", user.ID, "product_id", req.ProductID)

	if req.Quantity < MinOrderQuantity {
		return fmt.Errorf("%w: minimum order quantity is %d bags", ErrValidation, MinOrderQuantity)
	}

	product, err := s.Repo.ProductByID(ctx, req.ProductID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product", ErrNotFound)
		}
		return err
	}
	unitPrice := product.UnitPriceFor(user.Role)

	cart, err := s.Repo.CartByUser(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		cart, err = s.Repo.CreateCart(ctx, user.ID)
		if err != nil {
			return err
		}
	}

	items := cart.Items
	found := false
	for i := range items {
		if items[i].ProductID == req.ProductID {
			items[i].Quantity = req.Quantity
			items[i].UnitPrice = unitPrice
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			UnitPrice: unitPrice,
		})
	}

	if err := s.Repo.ReplaceCartItems(ctx, cart.ID, items); err != nil {
		return err
	}
	l.Info("cart_item_added", "quantity", req.Quantity, "unit_price", unitPrice)
	return nil
}

// RemoveFromCart drops the line for a product. A missing cart is an error,
// a missing line is a no-op.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID string) error {
	cart, err := s.Repo.CartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: cart", ErrNotFound)
		}
		return err
	}

	items := cart.Items[:0]
	for _, it := range cart.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	return s.Repo.ReplaceCartItems(ctx, cart.ID, items)
}

func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	cart, err := s.Repo.CartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.Repo.ReplaceCartItems(ctx, cart.ID, nil)
}
