package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cemention/cemention/internal/models"
	"github.com/cemention/cemention/internal/otp"
	"github.com/cemention/cemention/internal/transport"
)

func TestRegisterFlow(t *testing.T) {
	env := newTestEnv(t)
	phone := "+919876543210"

	// Demo mode hands the code back in the response.
	rec := env.do(http.MethodPost, "/api/auth/send-otp", "", transport.OTPRequest{Phone: phone})
	require.Equal(t, http.StatusOK, rec.Code)
	sent := decode[otp.Result](t, rec)
	require.True(t, sent.Success)
	require.Len(t, sent.Code, 6)

	rec = env.do(http.MethodPost, "/api/auth/verify-otp", "", transport.OTPVerifyRequest{Phone: phone, OTP: sent.Code})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decode[otp.Result](t, rec).Success)

	rec = env.do(http.MethodPost, "/api/auth/register", "", transport.RegisterRequest{
		Phone: phone,
		Role:  models.RoleCustomer,
		Name:  "Asha",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	registered := decode[transport.LoginResponse](t, rec)
	require.True(t, registered.Success)
	require.NotEmpty(t, registered.Token)
	require.Equal(t, models.UserApproved, registered.User.Status)

	// The token from register works immediately.
	rec = env.do(http.MethodGet, "/api/auth/me", registered.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.seedUser(models.RoleCustomer, models.UserApproved)

	rec := env.do(http.MethodPost, "/api/auth/register", "", transport.RegisterRequest{
		Phone: user.Phone,
		Role:  models.RoleCustomer,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[transport.LoginResponse](t, rec)
	require.False(t, resp.Success)
	require.Empty(t, resp.Token)
}

func TestRegisterDealerNeedsBusinessDetails(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/auth/register", "", transport.RegisterRequest{
		Phone: "+919000000001",
		Role:  models.RoleDealer,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.seedUser(models.RoleCustomer, models.UserApproved)

	rec := env.do(http.MethodPost, "/api/auth/login", "", transport.LoginRequest{Phone: user.Phone})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[transport.LoginResponse](t, rec)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)

	rec = env.do(http.MethodPost, "/api/auth/login", "", transport.LoginRequest{Phone: "+910000000000"})
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode[transport.LoginResponse](t, rec)
	require.False(t, resp.Success)
	require.Empty(t, resp.Token)
}
