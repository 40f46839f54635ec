// Package authz is the single place role/status gating happens. Handlers
// and services ask Authorize instead of re-checking roles ad hoc.
package authz

import (
	"errors"
	"fmt"

	"github.com/cemention/cemention/internal/models"
)

var (
	// ErrUnapproved means the caller's account exists but is not cleared
	// for trading yet. Distinct from an authentication failure.
	ErrUnapproved = errors.New("account pending approval")
	// ErrForbidden means the caller's role can never perform the action.
	ErrForbidden = errors.New("forbidden")
)

type Action string

const (
	ActionBrowseCatalog Action = "catalog.browse"
	ActionManageCart    Action = "cart.manage"
	ActionPlaceOrder    Action = "order.place"
	ActionRequestOrder  Action = "order.request"
	ActionAdministrate  Action = "admin"
)

// Authorize decides whether a caller may perform an action. Dealers and
// retailers trade only once APPROVED; customers and admins bypass the gate.
func Authorize(u *models.User, action Action) error {
	if action == ActionAdministrate {
		if u.Role != models.RoleAdmin {
			return fmt.Errorf("%w: admin access required", ErrForbidden)
		}
		return nil
	}

	switch u.Role {
	case models.RoleDealer, models.RoleRetailer:
		if u.Status != models.UserApproved {
			return fmt.Errorf("%w: contact admin", ErrUnapproved)
		}
		return nil
	case models.RoleCustomer, models.RoleAdmin:
		return nil
	}
	return fmt.Errorf("%w: unknown role %q", ErrForbidden, u.Role)
}
