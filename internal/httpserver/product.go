package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cemention/cemention/internal/service"
)

type ProductHTTP struct {
	Svc *service.CatalogService
}

func (h *ProductHTTP) ListProducts(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	products, err := h.Svc.ListProducts(c.Request().Context(), user.Role)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	product, err := h.Svc.GetProduct(c.Request().Context(), c.Param("id"), user.Role)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return def
}

func (h *ProductHTTP) SearchProducts(c echo.Context) error {
	from := parseIntDefault(c.QueryParam("from"), 0)
	size := parseIntDefault(c.QueryParam("size"), 20)

	resp, err := h.Svc.SearchProducts(c.Request().Context(), c.QueryParam("q"), from, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}
