package service

import (
	"context"
	"errors"
	"fmt"

	elasticsearch "github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cemention/cemention/internal/es"
	"github.com/cemention/cemention/internal/events"
	"github.com/cemention/cemention/internal/models"
	"github.com/cemention/cemention/internal/repo"
	"github.com/cemention/cemention/internal/transport"
	"github.com/cemention/cemention/pkg/logging"
)

// AdminService owns every back-office mutation: approvals, catalog CRUD,
// order status moves and the summary report.
type AdminService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
	ES       *elasticsearch.Client
}

func (s *AdminService) PendingUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsersByStatus(ctx, models.UserPending)
}

func (s *AdminService) Users(ctx context.Context, role models.Role) ([]models.User, error) {
	if role != "" && !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	return s.Repo.ListUsers(ctx, role)
}

func (s *AdminService) setUserStatus(ctx context.Context, id string, status models.UserStatus, eventType string) error {
	l := logging.FromContext(ctx).With("svc", "admin.user_status", "user_id", id)

	if err := s.Repo.UpdateUserStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user", ErrNotFound)
		}
		return err
	}
	if err := s.Producer.PublishEvent(ctx, events.TopicUserEvents, id, map[string]any{
		"type":   eventType,
		"userID": id,
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}
	l.Info("user_status_updated", "status", status)
	return nil
}

func (s *AdminService) ApproveUser(ctx context.Context, id string) error {
	return s.setUserStatus(ctx, id, models.UserApproved, "user_approved")
}

func (s *AdminService) RejectUser(ctx context.Context, id string) error {
	return s.setUserStatus(ctx, id, models.UserRejected, "user_rejected")
}

func (s *AdminService) CreateProduct(ctx context.Context, req transport.ProductCreateRequest) (*models.Product, error) {
	if req.Name == "" || req.Brand == "" {
		return nil, fmt.Errorf("%w: name and brand required", ErrValidation)
	}

	product := &models.Product{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Brand:             req.Brand,
		Description:       req.Description,
		BasePriceDealer:   req.BasePriceDealer,
		BasePriceRetailer: req.BasePriceRetailer,
		BasePriceCustomer: req.BasePriceCustomer,
		MinQuantity:       req.MinQuantity,
		StockAvailable:    req.StockAvailable,
		ImageURL:          req.ImageURL,
		IsActive:          true,
	}
	if product.MinQuantity == 0 {
		product.MinQuantity = 100
	}

	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	if err := es.IndexProduct(ctx, s.ES, product); err != nil {
		logging.FromContext(ctx).Warn("es_index_failed", "product_id", product.ID, "error", err)
	}
	return product, nil
}

func (s *AdminService) AllProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, false)
}

func (s *AdminService) UpdateProduct(ctx context.Context, id string, req transport.ProductUpdateRequest) (*models.Product, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Brand != nil {
		fields["brand"] = *req.Brand
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.BasePriceDealer != nil {
		fields["base_price_dealer"] = *req.BasePriceDealer
	}
	if req.BasePriceRetailer != nil {
		fields["base_price_retailer"] = *req.BasePriceRetailer
	}
	if req.BasePriceCustomer != nil {
		fields["base_price_customer"] = *req.BasePriceCustomer
	}
	if req.StockAvailable != nil {
		fields["stock_available"] = *req.StockAvailable
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	product, err := s.Repo.UpdateProductFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product", ErrNotFound)
		}
		return nil, err
	}
	if err := es.IndexProduct(ctx, s.ES, product); err != nil {
		logging.FromContext(ctx).Warn("es_index_failed", "product_id", product.ID, "error", err)
	}
	return product, nil
}

// DeleteProduct deactivates rather than removes: orders keep referencing
// the row but carts and the catalog stop seeing it.
func (s *AdminService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.Repo.DeactivateProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product", ErrNotFound)
		}
		return err
	}
	if err := es.DeleteProduct(ctx, s.ES, id); err != nil {
		logging.FromContext(ctx).Warn("es_deindex_failed", "product_id", id, "error", err)
	}
	return nil
}

func (s *AdminService) AllOrders(ctx context.Context) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx)
}

// UpdateOrder moves status machines and delivery-tracking fields. Item and
// amount columns stay frozen. Invalid transitions are rejected.
func (s *AdminService) UpdateOrder(ctx context.Context, id string, req transport.OrderUpdateRequest) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "admin.update_order", "order_id", id)

	order, err := s.Repo.OrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, err
	}

	fields := map[string]any{}
	if req.PaymentStatus != nil && *req.PaymentStatus != order.PaymentStatus {
		if !order.PaymentStatus.CanTransition(*req.PaymentStatus) {
			return nil, fmt.Errorf("%w: payment status %s -> %s", ErrValidation, order.PaymentStatus, *req.PaymentStatus)
		}
		fields["payment_status"] = *req.PaymentStatus
	}
	if req.OrderStatus != nil && *req.OrderStatus != order.OrderStatus {
		if !order.OrderStatus.CanTransition(*req.OrderStatus) {
			return nil, fmt.Errorf("%w: order status %s -> %s", ErrValidation, order.OrderStatus, *req.OrderStatus)
		}
		fields["order_status"] = *req.OrderStatus
	}
	if req.DriverName != nil {
		fields["driver_name"] = *req.DriverName
	}
	if req.DriverMobile != nil {
		fields["driver_mobile"] = *req.DriverMobile
	}
	if req.VehicleNumber != nil {
		fields["vehicle_number"] = *req.VehicleNumber
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	updated, err := s.Repo.UpdateOrderFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if _, ok := fields["order_status"]; ok {
		if err := s.Producer.PublishEvent(ctx, events.TopicOrderEvents, id, map[string]any{
			"type":         "order_status_updated",
			"orderID":      id,
			"order_status": updated.OrderStatus,
		}); err != nil {
			l.Warn("event_publish_failed", "error", err)
		}
	}
	return updated, nil
}

func (s *AdminService) AllRequestOrders(ctx context.Context) ([]models.RequestOrder, error) {
	return s.Repo.ListRequestOrders(ctx)
}

func (s *AdminService) UpdateRequestOrder(ctx context.Context, id string, req transport.RequestOrderUpdateRequest) (*models.RequestOrder, error) {
	request, err := s.Repo.RequestOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: request order", ErrNotFound)
		}
		return nil, err
	}

	fields := map[string]any{}
	if req.Status != "" && req.Status != request.Status {
		if !request.Status.CanTransition(req.Status) {
			return nil, fmt.Errorf("%w: request status %s -> %s", ErrValidation, request.Status, req.Status)
		}
		fields["status"] = req.Status
	}
	if req.AdminNotes != nil {
		fields["admin_notes"] = *req.AdminNotes
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	return s.Repo.UpdateRequestOrderFields(ctx, id, fields)
}

func (s *AdminService) SummaryReport(ctx context.Context) (*repo.SummaryReport, error) {
	return s.Repo.Summary(ctx)
}
