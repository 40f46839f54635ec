package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cemention/cemention/internal/models"
	"github.com/cemention/cemention/internal/service"
	"github.com/cemention/cemention/internal/transport"
)

type AdminHTTP struct {
	Svc *service.AdminService
}

func (h *AdminHTTP) PendingUsers(c echo.Context) error {
	users, err := h.Svc.PendingUsers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AdminHTTP) Users(c echo.Context) error {
	role := models.Role(c.QueryParam("role"))
	users, err := h.Svc.Users(c.Request().Context(), role)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AdminHTTP) ApproveUser(c echo.Context) error {
	if err := h.Svc.ApproveUser(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.StatusResponse{Success: true, Message: "User approved"})
}

func (h *AdminHTTP) RejectUser(c echo.Context) error {
	if err := h.Svc.RejectUser(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.StatusResponse{Success: true, Message: "User rejected"})
}

func (h *AdminHTTP) CreateProduct(c echo.Context) error {
	var req transport.ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	product, err := h.Svc.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *AdminHTTP) AllProducts(c echo.Context) error {
	products, err := h.Svc.AllProducts(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *AdminHTTP) UpdateProduct(c echo.Context) error {
	var req transport.ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	product, err := h.Svc.UpdateProduct(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *AdminHTTP) DeleteProduct(c echo.Context) error {
	if err := h.Svc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.StatusResponse{Success: true, Message: "Product deactivated"})
}

func (h *AdminHTTP) AllOrders(c echo.Context) error {
	orders, err := h.Svc.AllOrders(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *AdminHTTP) UpdateOrder(c echo.Context) error {
	var req transport.OrderUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	order, err := h.Svc.UpdateOrder(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *AdminHTTP) AllRequestOrders(c echo.Context) error {
	requests, err := h.Svc.AllRequestOrders(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *AdminHTTP) UpdateRequestOrder(c echo.Context) error {
	var req transport.RequestOrderUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	request, err := h.Svc.UpdateRequestOrder(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, request)
}

func (h *AdminHTTP) SummaryReport(c echo.Context) error {
	report, err := h.Svc.SummaryReport(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}
