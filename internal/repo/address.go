package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/cemention/cemention/internal/models"
)

// CreateAddress inserts the address; a new default unsets any previous one.
func (r *GormRepo) CreateAddress(ctx context.Context, a *models.Address) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if a.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ?", a.UserID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(a).Error
	})
}

func (r *GormRepo) ListAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *GormRepo) AddressByIDForUser(ctx context.Context, id, userID string) (*models.Address, error) {
	var address models.Address
	if err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *GormRepo) DeleteAddress(ctx context.Context, id, userID string) error {
	tx := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Address{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
