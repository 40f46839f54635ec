package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cemention/cemention/internal/models"
)

func (r *GormRepo) CartByUser(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormRepo) CreateCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart := models.Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		UpdatedAt: time.Now(),
	}
	if err := r.DB.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// ReplaceCartItems swaps the cart's line items for the given set, mirroring
// a document-style write of the whole item list.
func (r *GormRepo) ReplaceCartItems(ctx context.Context, cartID string, items []models.CartItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].CartID = cartID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Cart{}).Where("id = ?", cartID).
			Update("updated_at", time.Now()).Error
	})
}
