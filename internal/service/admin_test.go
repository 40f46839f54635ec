package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cemention/cemention/internal/models"
	"github.com/cemention/cemention/internal/repo"
	"github.com/cemention/cemention/internal/transport"
)

func TestApproveAndRejectUser(t *testing.T) {
	r := newTestRepo(t)
	svc := &AdminService{Repo: r}
	ctx := context.Background()

	dealer := createUser(t, r, models.RoleDealer, models.UserPending)
	retailer := createUser(t, r, models.RoleRetailer, models.UserPending)

	pending, err := svc.PendingUsers(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	require.NoError(t, svc.ApproveUser(ctx, dealer.ID))
	require.NoError(t, svc.RejectUser(ctx, retailer.ID))
	require.ErrorIs(t, svc.ApproveUser(ctx, "missing"), ErrNotFound)

	approved, err := r.UserByID(ctx, dealer.ID)
	require.NoError(t, err)
	require.Equal(t, models.UserApproved, approved.Status)

	rejected, err := r.UserByID(ctx, retailer.ID)
	require.NoError(t, err)
	require.Equal(t, models.UserRejected, rejected.Status)
}

func TestUsersFilterByRole(t *testing.T) {
	r := newTestRepo(t)
	svc := &AdminService{Repo: r}
	ctx := context.Background()

	createUser(t, r, models.RoleDealer, models.UserPending)
	createUser(t, r, models.RoleCustomer, models.UserApproved)

	dealers, err := svc.Users(ctx, models.RoleDealer)
	require.NoError(t, err)
	require.Len(t, dealers, 1)

	all, err := svc.Users(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	_, err = svc.Users(ctx, "WHOLESALER")
	require.ErrorIs(t, err, ErrValidation)
}

func TestProductCRUD(t *testing.T) {
	r := newTestRepo(t)
	svc := &AdminService{Repo: r}
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, transport.ProductCreateRequest{
		Name:              "UltraStrong OPC 53",
		Brand:             "UltraStrong",
		BasePriceDealer:   300,
		BasePriceRetailer: 303,
		BasePriceCustomer: 305,
	})
	require.NoError(t, err)
	require.Equal(t, 100, product.MinQuantity)
	require.True(t, product.IsActive)

	newPrice := int64(310)
	updated, err := svc.UpdateProduct(ctx, product.ID, transport.ProductUpdateRequest{
		BasePriceDealer: &newPrice,
	})
	require.NoError(t, err)
	require.Equal(t, newPrice, updated.BasePriceDealer)

	_, err = svc.UpdateProduct(ctx, product.ID, transport.ProductUpdateRequest{})
	require.ErrorIs(t, err, ErrValidation)

	// Delete is a soft deactivate: gone from the catalog, still resolvable.
	require.NoError(t, svc.DeleteProduct(ctx, product.ID))
	_, err = r.ProductByID(ctx, product.ID, true)
	require.Error(t, err)
	kept, err := r.ProductByID(ctx, product.ID, false)
	require.NoError(t, err)
	require.False(t, kept.IsActive)

	require.ErrorIs(t, svc.DeleteProduct(ctx, "missing"), ErrNotFound)
}

func seedPaidOrder(t *testing.T, r *repo.GormRepo, userID string, total int64, payment models.PaymentStatus, status models.OrderStatus) *models.Order {
	t.Helper()
	order := &models.Order{
		ID:                uuid.NewString(),
		UserID:            userID,
		OrderNumber:       "ORD-test-" + uuid.NewString()[:6],
		Subtotal:          total,
		TotalAmount:       total,
		PaymentMethod:     models.PaymentUPI,
		PaymentStatus:     payment,
		OrderStatus:       status,
		DeliveryAddressID: "addr",
	}
	require.NoError(t, r.CreateOrder(context.Background(), order))
	return order
}

func TestUpdateOrderValidatesTransitions(t *testing.T) {
	r := newTestRepo(t)
	svc := &AdminService{Repo: r}
	ctx := context.Background()

	user := createUser(t, r, models.RoleCustomer, models.UserApproved)
	order := seedPaidOrder(t, r, user.ID, 1000, models.PaymentPending, models.OrderPending)

	skipAhead := models.OrderAssigned
	_, err := svc.UpdateOrder(ctx, order.ID, transport.OrderUpdateRequest{OrderStatus: &skipAhead})
	require.ErrorIs(t, err, ErrValidation)

	next := models.OrderPaymentReceived
	received := models.PaymentReceived
	driver := "Ramesh"
	updated, err := svc.UpdateOrder(ctx, order.ID, transport.OrderUpdateRequest{
		OrderStatus:   &next,
		PaymentStatus: &received,
		DriverName:    &driver,
	})
	require.NoError(t, err)
	require.Equal(t, models.OrderPaymentReceived, updated.OrderStatus)
	require.Equal(t, models.PaymentReceived, updated.PaymentStatus)
	require.Equal(t, "Ramesh", updated.DriverName)

	// Amounts survive status moves untouched.
	require.Equal(t, int64(1000), updated.TotalAmount)

	_, err = svc.UpdateOrder(ctx, order.ID, transport.OrderUpdateRequest{})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateOrder(ctx, "missing", transport.OrderUpdateRequest{OrderStatus: &next})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRequestOrderSingleTransition(t *testing.T) {
	r := newTestRepo(t)
	svc := &AdminService{Repo: r}
	ctx := context.Background()

	user := createUser(t, r, models.RoleDealer, models.UserApproved)
	orderSvc := &OrderService{Repo: r}
	request, err := orderSvc.CreateRequestOrder(ctx, user, transport.RequestOrderCreateRequest{
		CementBrand: "UltraStrong", Quantity: 5000, DeliveryLocation: "Pune",
	})
	require.NoError(t, err)

	notes := "approved for bulk rate"
	updated, err := svc.UpdateRequestOrder(ctx, request.ID, transport.RequestOrderUpdateRequest{
		Status:     models.RequestApproved,
		AdminNotes: &notes,
	})
	require.NoError(t, err)
	require.Equal(t, models.RequestApproved, updated.Status)
	require.Equal(t, notes, updated.AdminNotes)

	// Terminal: no second transition.
	_, err = svc.UpdateRequestOrder(ctx, request.ID, transport.RequestOrderUpdateRequest{
		Status: models.RequestRejected,
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestSummaryReport(t *testing.T) {
	r := newTestRepo(t)
	svc := &AdminService{Repo: r}
	ctx := context.Background()

	customer := createUser(t, r, models.RoleCustomer, models.UserApproved)
	createUser(t, r, models.RoleDealer, models.UserPending)

	seedPaidOrder(t, r, customer.ID, 54600, models.PaymentReceived, models.OrderDelivered)
	seedPaidOrder(t, r, customer.ID, 53690, models.PaymentReceived, models.OrderAssigned)
	seedPaidOrder(t, r, customer.ID, 11111, models.PaymentPending, models.OrderPending)

	report, err := svc.SummaryReport(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), report.TotalUsers)
	require.Equal(t, int64(1), report.PendingUsers)
	require.Equal(t, int64(3), report.TotalOrders)
	require.Equal(t, int64(1), report.PendingOrders)
	require.Equal(t, int64(1), report.CompletedOrders)
	// Revenue only counts verified payments.
	require.Equal(t, int64(54600+53690), report.TotalRevenue)
}
