package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cemention/cemention/internal/service"
	"github.com/cemention/cemention/internal/transport"
	"github.com/cemention/cemention/pkg/logging"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req transport.OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.CreateOrder(ctx, user, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) MyOrders(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	orders, err := h.Svc.MyOrders(c.Request().Context(), user.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	order, err := h.Svc.GetOrder(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) ConfirmPayment(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	resp, err := h.Svc.ConfirmPayment(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *OrderHTTP) CreateRequestOrder(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req transport.RequestOrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	request, err := h.Svc.CreateRequestOrder(c.Request().Context(), user, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, request)
}

func (h *OrderHTTP) MyRequestOrders(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	requests, err := h.Svc.MyRequestOrders(c.Request().Context(), user.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, requests)
}
