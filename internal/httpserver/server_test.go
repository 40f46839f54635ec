package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cemention/cemention/internal/config"
	"github.com/cemention/cemention/internal/models"
	"github.com/cemention/cemention/internal/otp"
	"github.com/cemention/cemention/internal/repo"
	"github.com/cemention/cemention/internal/service"
	"github.com/cemention/cemention/internal/transport"
	"github.com/cemention/cemention/pkg/tokens"
)

var testSecret = []byte("test-secret")

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	Repo *repo.GormRepo
}

type memOTPStore struct {
	records map[string]otp.Record
}

func (s *memOTPStore) Save(ctx context.Context, phone string, rec otp.Record, ttl time.Duration) error {
	s.records[phone] = rec
	return nil
}

func (s *memOTPStore) Get(ctx context.Context, phone string) (otp.Record, error) {
	rec, ok := s.records[phone]
	if !ok {
		return otp.Record{}, otp.ErrCodeNotFound
	}
	return rec, nil
}

func (s *memOTPStore) MarkVerified(ctx context.Context, phone string) error {
	rec := s.records[phone]
	rec.Verified = true
	s.records[phone] = rec
	return nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	r := repo.New(db)

	otpSvc := &otp.Service{
		Store:    &memOTPStore{records: map[string]otp.Record{}},
		Provider: otp.DemoProvider{},
		Demo:     true,
	}
	authSvc := &service.AuthService{Repo: r, OTP: otpSvc, JWTSecret: testSecret}

	e := echo.New()
	Register(e, &Deps{
		JWTSecret: testSecret,
		AuthSvc:   authSvc,
		Auth:      &AuthHTTP{Svc: authSvc},
		Product:   &ProductHTTP{Svc: &service.CatalogService{Repo: r}},
		Cart:      &CartHTTP{Svc: &service.CartService{Repo: r}},
		Address:   &AddressHTTP{Svc: &service.AddressService{Repo: r}},
		Order:     &OrderHTTP{Svc: &service.OrderService{Repo: r}},
		Admin:     &AdminHTTP{Svc: &service.AdminService{Repo: r}},
	})

	return &testEnv{T: t, E: e, Repo: r}
}

// do runs a request through the full router, middleware included.
func (env *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// seedUser writes a user straight to the store and mints a token for it.
func (env *testEnv) seedUser(role models.Role, status models.UserStatus) (*models.User, string) {
	env.T.Helper()

	user := &models.User{
		ID:       uuid.NewString(),
		Phone:    "+91" + uuid.NewString()[:10],
		Role:     role,
		Status:   status,
		IsActive: true,
	}
	require.NoError(env.T, env.Repo.CreateUserIfNotExists(context.Background(), user))

	token, err := tokens.NewAccessToken(user.ID, testSecret, time.Now())
	require.NoError(env.T, err)
	return user, token
}

func (env *testEnv) seedProduct(dealer, retailer, customer int64) *models.Product {
	env.T.Helper()

	product := &models.Product{
		ID:                uuid.NewString(),
		Name:              "UltraStrong OPC 53",
		Brand:             "UltraStrong",
		BasePriceDealer:   dealer,
		BasePriceRetailer: retailer,
		BasePriceCustomer: customer,
		MinQuantity:       100,
		StockAvailable:    10000,
		IsActive:          true,
	}
	require.NoError(env.T, env.Repo.CreateProduct(context.Background(), product))
	return product
}

func (env *testEnv) seedAddress(userID string) *models.Address {
	env.T.Helper()

	address := &models.Address{
		ID:           uuid.NewString(),
		UserID:       userID,
		AddressLine1: "Plot 12, Industrial Area",
		City:         "Pune",
		State:        "Maharashtra",
		Pincode:      "411001",
	}
	require.NoError(env.T, env.Repo.CreateAddress(context.Background(), address))
	return address
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/health/live", "", nil).Code)
	require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/health/ready", "", nil).Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/auth/me", "/api/products", "/api/cart", "/api/orders/my-orders", "/api/admin/users"} {
		rec := env.do(http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec := env.do(http.MethodGet, "/api/products", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenForDeletedUserRejected(t *testing.T) {
	env := newTestEnv(t)

	token, err := tokens.NewAccessToken(uuid.NewString(), testSecret, time.Now())
	require.NoError(t, err)

	rec := env.do(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.seedUser(models.RoleCustomer, models.UserApproved)

	rec := env.do(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	me := decode[models.User](t, rec)
	require.Equal(t, user.ID, me.ID)
	require.Equal(t, user.Phone, me.Phone)
}

func TestPendingDealerBlockedFromTrade(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(models.RoleDealer, models.UserPending)
	product := env.seedProduct(300, 303, 305)

	blocked := []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, "/api/products", nil},
		{http.MethodPost, "/api/cart/add", transport.CartAddRequest{ProductID: product.ID, Quantity: 100}},
		{http.MethodPost, "/api/orders/create", transport.OrderCreateRequest{PaymentMethod: models.PaymentUPI}},
		{http.MethodPost, "/api/orders/request-order", transport.RequestOrderCreateRequest{CementBrand: "UltraStrong", Quantity: 5000, DeliveryLocation: "Pune"}},
	}
	for _, tc := range blocked {
		rec := env.do(tc.method, tc.path, token, tc.body)
		require.Equal(t, http.StatusForbidden, rec.Code, tc.path)
	}
}
