package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/cemention/cemention/internal/models"
)

func (r *GormRepo) CreateRequestOrder(ctx context.Context, req *models.RequestOrder) error {
	return r.DB.WithContext(ctx).Create(req).Error
}

func (r *GormRepo) RequestOrdersByUser(ctx context.Context, userID string) ([]models.RequestOrder, error) {
	var requests []models.RequestOrder
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *GormRepo) ListRequestOrders(ctx context.Context) ([]models.RequestOrder, error) {
	var requests []models.RequestOrder
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *GormRepo) RequestOrderByID(ctx context.Context, id string) (*models.RequestOrder, error) {
	var request models.RequestOrder
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *GormRepo) UpdateRequestOrderFields(ctx context.Context, id string, fields map[string]any) (*models.RequestOrder, error) {
	tx := r.DB.WithContext(ctx).Model(&models.RequestOrder{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.RequestOrderByID(ctx, id)
}
