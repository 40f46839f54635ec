package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cemention/cemention/internal/service"
	"github.com/cemention/cemention/internal/transport"
)

type AddressHTTP struct {
	Svc *service.AddressService
}

func (h *AddressHTTP) ListAddresses(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	addresses, err := h.Svc.ListAddresses(c.Request().Context(), user.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, addresses)
}

func (h *AddressHTTP) CreateAddress(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req transport.AddressCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	address, err := h.Svc.CreateAddress(c.Request().Context(), user.ID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, address)
}

func (h *AddressHTTP) DeleteAddress(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteAddress(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.StatusResponse{
		Success: true,
		Message: "Address deleted",
	})
}
