package repo

import (
	"context"

	"github.com/cemention/cemention/internal/models"
)

type SummaryReport struct {
	TotalUsers      int64 `json:"total_users"`
	PendingUsers    int64 `json:"pending_users"`
	TotalOrders     int64 `json:"total_orders"`
	PendingOrders   int64 `json:"pending_orders"`
	CompletedOrders int64 `json:"completed_orders"`
	TotalRevenue    int64 `json:"total_revenue"`
}

// Summary aggregates the back-office dashboard numbers. Revenue counts only
// orders whose payment was verified as RECEIVED.
func (r *GormRepo) Summary(ctx context.Context) (*SummaryReport, error) {
	db := r.DB.WithContext(ctx)
	var report SummaryReport

	if err := db.Model(&models.User{}).Count(&report.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.User{}).
		Where("status = ?", models.UserPending).
		Count(&report.PendingUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).Count(&report.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentPending).
		Count(&report.PendingOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).
		Where("order_status = ?", models.OrderDelivered).
		Count(&report.CompletedOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentReceived).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&report.TotalRevenue).Error; err != nil {
		return nil, err
	}
	return &report, nil
}
