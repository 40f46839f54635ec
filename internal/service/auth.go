package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cemention/cemention/internal/events"
	"github.com/cemention/cemention/internal/models"
	"github.com/cemention/cemention/internal/otp"
	"github.com/cemention/cemention/internal/repo"
	"github.com/cemention/cemention/internal/transport"
	"github.com/cemention/cemention/pkg/logging"
	"github.com/cemention/cemention/pkg/tokens"
)

type AuthService struct {
	Repo      *repo.GormRepo
	OTP       *otp.Service
	Producer  *events.Producer
	JWTSecret []byte
}

func (s *AuthService) SendOTP(ctx context.Context, phone string) (*otp.Result, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: phone required", ErrValidation)
	}
	return s.OTP.SendOTP(ctx, phone)
}

func (s *AuthService) VerifyOTP(ctx context.Context, phone, code string) (*otp.Result, error) {
	if phone == "" || code == "" {
		return nil, fmt.Errorf("%w: phone and otp required", ErrValidation)
	}
	return s.OTP.VerifyOTP(ctx, phone, code)
}

// Register creates an account for a verified phone number. Dealers and
// retailers must supply business and GST details and start out PENDING;
// a duplicate phone yields success=false rather than an error.
func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*transport.LoginResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register", "phone", req.Phone)

	if req.Phone == "" {
		return nil, fmt.Errorf("%w: phone required", ErrValidation)
	}
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}
	if req.Role.RequiresApproval() {
		if req.GSTNumber == "" || req.GSTRegisteredName == "" {
			return nil, fmt.Errorf("%w: GST details are mandatory for Dealers and Retailers", ErrValidation)
		}
		if req.BusinessName == "" || req.BrandShopName == "" {
			return nil, fmt.Errorf("%w: business details are mandatory for Dealers and Retailers", ErrValidation)
		}
	}

	status := models.UserApproved
	if req.Role.RequiresApproval() {
		status = models.UserPending
	}

	user := &models.User{
		ID:                uuid.NewString(),
		Phone:             req.Phone,
		Role:              req.Role,
		Status:            status,
		Name:              req.Name,
		Email:             req.Email,
		BusinessName:      req.BusinessName,
		BrandShopName:     req.BrandShopName,
		GSTNumber:         req.GSTNumber,
		GSTRegisteredName: req.GSTRegisteredName,
		IsActive:          true,
	}

	if err := s.Repo.CreateUserIfNotExists(ctx, user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExists) {
			return &transport.LoginResponse{
				Success: false,
				Message: "User already registered. Please login.",
			}, nil
		}
		return nil, err
	}

	token, err := tokens.NewAccessToken(user.ID, s.JWTSecret, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.Producer.PublishEvent(ctx, events.TopicUserEvents, user.ID, map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"phone":  user.Phone,
		"role":   user.Role,
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	l.Info("register_success", "role", user.Role, "status", user.Status)
	return &transport.LoginResponse{
		Success: true,
		Message: "Registration successful",
		User:    user,
		Token:   token,
	}, nil
}

// Login issues a token for an existing phone. Unknown phones get a
// success=false payload so the client can route to registration.
func (s *AuthService) Login(ctx context.Context, phone string) (*transport.LoginResponse, error) {
	user, err := s.Repo.UserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &transport.LoginResponse{
				Success: false,
				Message: "User not found. Please register first.",
			}, nil
		}
		return nil, err
	}

	token, err := tokens.NewAccessToken(user.ID, s.JWTSecret, time.Now())
	if err != nil {
		return nil, err
	}

	return &transport.LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    user,
		Token:   token,
	}, nil
}

// UserByID resolves a token subject against the user store.
func (s *AuthService) UserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Repo.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}
