// Package otp issues and verifies one-time login codes. Codes live in
// redis under a short TTL and are stored bcrypt-hashed.
package otp

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cemention/cemention/pkg/logging"
)

const codeTTL = 5 * time.Minute

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SID     string `json:"sid,omitempty"`
	// Code is only ever filled in demo mode.
	Code string `json:"otp,omitempty"`
}

type Service struct {
	Store    Store
	Provider Provider
	Demo     bool
}

func generateCode() string {
	return fmt.Sprintf("%06d", rand.IntN(900000)+100000)
}

// SendOTP stores a fresh code for the phone and hands it to the provider.
// Provider failures degrade to a failed Result, not an error: the caller
// always gets a well-formed response.
func (s *Service) SendOTP(ctx context.Context, phone string) (*Result, error) {
	l := logging.FromContext(ctx).With("svc", "otp.send", "phone", phone)

	code := generateCode()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	rec := Record{
		CodeHash:  string(hash),
		ExpiresAt: time.Now().Add(codeTTL),
	}
	if err := s.Store.Save(ctx, phone, rec, codeTTL); err != nil {
		return nil, err
	}

	if s.Demo {
		l.Info("otp_issued", "mode", "demo")
		return &Result{
			Success: true,
			Message: "OTP sent successfully (Demo Mode)",
			Code:    code,
		}, nil
	}

	sid, err := s.Provider.Send(ctx, phone, code)
	if err != nil {
		l.Warn("otp_send_failed", "error", err)
		return &Result{
			Success: false,
			Message: fmt.Sprintf("Failed to send OTP: %v", err),
		}, nil
	}

	l.Info("otp_issued", "sid", sid)
	return &Result{
		Success: true,
		Message: "OTP sent successfully",
		SID:     sid,
	}, nil
}

// VerifyOTP is single-use: a code that verified once cannot verify again.
func (s *Service) VerifyOTP(ctx context.Context, phone, code string) (*Result, error) {
	rec, err := s.Store.Get(ctx, phone)
	if err != nil {
		if errors.Is(err, ErrCodeNotFound) {
			return &Result{Success: false, Message: "No OTP found for this phone number"}, nil
		}
		return nil, err
	}

	if rec.Verified {
		return &Result{Success: false, Message: "OTP already used"}, nil
	}
	if time.Now().After(rec.ExpiresAt) {
		return &Result{Success: false, Message: "OTP has expired"}, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.CodeHash), []byte(code)) != nil {
		return &Result{Success: false, Message: "Invalid OTP"}, nil
	}

	if err := s.Store.MarkVerified(ctx, phone); err != nil {
		return nil, err
	}
	return &Result{Success: true, Message: "OTP verified successfully"}, nil
}
