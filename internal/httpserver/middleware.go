package httpserver

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/cemention/cemention/internal/authz"
	"github.com/cemention/cemention/internal/models"
	"github.com/cemention/cemention/internal/service"
	"github.com/cemention/cemention/pkg/tokens"
)

const (
	tokenContextKey = "token"
	userContextKey  = "user"
)

func JWTMiddleware(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningMethod: "HS256",
		SigningKey:    secret,
		ContextKey:    tokenContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(tokens.AccessClaims)
		},
		// Missing and malformed tokens are both authentication failures.
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
		},
	})
}

// LoadUser resolves the token subject against the user store and stashes
// the caller for the handlers downstream.
func LoadUser(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tkn, ok := c.Get(tokenContextKey).(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}
			claims, ok := tkn.Claims.(*tokens.AccessClaims)
			if !ok || claims.Subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token payload")
			}
			user, err := auth.UserByID(c.Request().Context(), claims.Subject)
			if err != nil {
				return httpError(err)
			}
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// Require gates a route group on the authorization policy.
func Require(action authz.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := currentUser(c)
			if err != nil {
				return err
			}
			if err := authz.Authorize(user, action); err != nil {
				return httpError(err)
			}
			return next(c)
		}
	}
}

func currentUser(c echo.Context) (*models.User, error) {
	user, ok := c.Get(userContextKey).(*models.User)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return user, nil
}
