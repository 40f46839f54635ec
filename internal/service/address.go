package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cemention/cemention/internal/models"
	"github.com/cemention/cemention/internal/repo"
	"github.com/cemention/cemention/internal/transport"
)

type AddressService struct {
	Repo *repo.GormRepo
}

func (s *AddressService) ListAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	return s.Repo.ListAddresses(ctx, userID)
}

func (s *AddressService) CreateAddress(ctx context.Context, userID string, req transport.AddressCreateRequest) (*models.Address, error) {
	if req.AddressLine1 == "" || req.City == "" || req.State == "" || req.Pincode == "" {
		return nil, fmt.Errorf("%w: address_line1, city, state and pincode required", ErrValidation)
	}

	address := &models.Address{
		ID:           uuid.NewString(),
		UserID:       userID,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		IsDefault:    req.IsDefault,
	}
	if err := s.Repo.CreateAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) DeleteAddress(ctx context.Context, id, userID string) error {
	if err := s.Repo.DeleteAddress(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: address", ErrNotFound)
		}
		return err
	}
	return nil
}
