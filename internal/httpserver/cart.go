package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cemention/cemention/internal/service"
	"github.com/cemention/cemention/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	cart, err := h.Svc.GetCart(c.Request().Context(), user.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req transport.CartAddRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := h.Svc.AddToCart(c.Request().Context(), user, req); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.StatusResponse{
		Success: true,
		Message: "Item added to cart",
	})
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.Svc.RemoveFromCart(c.Request().Context(), user.ID, c.Param("product_id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.StatusResponse{
		Success: true,
		Message: "Item removed from cart",
	})
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.Svc.ClearCart(c.Request().Context(), user.ID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.StatusResponse{
		Success: true,
		Message: "Cart cleared",
	})
}
