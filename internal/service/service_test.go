package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cemention/cemention/internal/config"
	"github.com/cemention/cemention/internal/models"
	"github.com/cemention/cemention/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	return repo.New(db)
}

func createUser(t *testing.T, r *repo.GormRepo, role models.Role, status models.UserStatus) *models.User {
	t.Helper()

	user := &models.User{
		ID:       uuid.NewString(),
		Phone:    "+91" + uuid.NewString()[:10],
		Role:     role,
		Status:   status,
		IsActive: true,
	}
	require.NoError(t, r.CreateUserIfNotExists(context.Background(), user))
	return user
}

func createProduct(t *testing.T, r *repo.GormRepo, dealer, retailer, customer int64) *models.Product {
	t.Helper()

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
	require.NoError(t, r.CreateProduct(context.Background(), product))
	return product
}

func createAddress(t *testing.T, r *repo.GormRepo, userID string) *models.Address {
	t.Helper()

	address := &models.Address{
		ID:           uuid.NewString(),
		UserID:       userID,
		AddressLine1: "Plot 12, Industrial Area",
		City:         "Pune",
		State:        "Maharashtra",
		Pincode:      "411001",
	}
	require.NoError(t, r.CreateAddress(context.Background(), address))
	return address
}
