package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/cemention/cemention/internal/models"
)

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *GormRepo) ProductByID(ctx context.Context, id string, activeOnly bool) (*models.Product, error) {
	q := r.DB.WithContext(ctx).Where("id = ?", id)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var product models.Product
	if err := q.First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) ListProducts(ctx context.Context, activeOnly bool) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var products []models.Product
	if err := q.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProductFields patches only the given columns and returns the
// refreshed row.
func (r *GormRepo) UpdateProductFields(ctx context.Context, id string, fields map[string]any) (*models.Product, error) {
	fields["updated_at"] = time.Now()
	tx := r.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.ProductByID(ctx, id, false)
}

func (r *GormRepo) DeactivateProduct(ctx context.Context, id string) error {
	tx := r.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
