package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/cemention/cemention/internal/authz"
	"github.com/cemention/cemention/internal/service"
)

type Deps struct {
	JWTSecret []byte
	AuthSvc   *service.AuthService

	Auth    *AuthHTTP
	Product *ProductHTTP
	Cart    *CartHTTP
	Address *AddressHTTP
	Order   *OrderHTTP
	Admin   *AdminHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/send-otp", d.Auth.SendOTP)
	auth.POST("/verify-otp", d.Auth.VerifyOTP)
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)

	authed := api.Group("", JWTMiddleware(d.JWTSecret), LoadUser(d.AuthSvc))
	authed.GET("/auth/me", d.Auth.Me)

	products := authed.Group("/products", Require(authz.ActionBrowseCatalog))
	products.GET("", d.Product.ListProducts)
	products.GET("/search", d.Product.SearchProducts)
	products.GET("/:id", d.Product.GetProduct)

	cart := authed.Group("/cart", Require(authz.ActionManageCart))
	cart.GET("", d.Cart.GetCart)
	cart.POST("/add", d.Cart.AddToCart)
	cart.DELETE("/remove/:product_id", d.Cart.RemoveFromCart)
	cart.DELETE("/clear", d.Cart.ClearCart)

	addresses := authed.Group("/addresses")
	addresses.GET("", d.Address.ListAddresses)
	addresses.POST("", d.Address.CreateAddress)
	addresses.DELETE("/:id", d.Address.DeleteAddress)

	orders := authed.Group("/orders")
	orders.POST("/create", d.Order.CreateOrder, Require(authz.ActionPlaceOrder))
	orders.GET("/my-orders", d.Order.MyOrders)
	orders.POST("/request-order", d.Order.CreateRequestOrder, Require(authz.ActionRequestOrder))
	orders.GET("/request-orders", d.Order.MyRequestOrders)
	orders.POST("/payment-confirmation/:id", d.Order.ConfirmPayment)
	orders.GET("/:id", d.Order.GetOrder)

	admin := authed.Group("/admin", Require(authz.ActionAdministrate))
	admin.GET("/users", d.Admin.Users)
	admin.GET("/users/pending", d.Admin.PendingUsers)
	admin.PATCH("/users/:id/approve", d.Admin.ApproveUser)
	admin.PATCH("/users/:id/reject", d.Admin.RejectUser)
	admin.POST("/products", d.Admin.CreateProduct)
	admin.GET("/products", d.Admin.AllProducts)
	admin.PATCH("/products/:id", d.Admin.UpdateProduct)
	admin.DELETE("/products/:id", d.Admin.DeleteProduct)
	admin.GET("/orders", d.Admin.AllOrders)
	admin.PATCH("/orders/:id", d.Admin.UpdateOrder)
	admin.GET("/request-orders", d.Admin.AllRequestOrders)
	admin.PATCH("/request-orders/:id", d.Admin.UpdateRequestOrder)
	admin.GET("/reports/summary", d.Admin.SummaryReport)
}
