package transport

import "github.com/cemention/cemention/internal/models"

type OTPRequest struct {
	Phone string `json:"phone"`
}

type OTPVerifyRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

type RegisterRequest struct {
	Phone             string      `json:"phone"`
	Role              models.Role `json:"role"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	BusinessName      string      `json:"business_name"`
	BrandShopName     string      `json:"brand_shop_name"`
	GSTNumber         string      `json:"gst_number"`
	GSTRegisteredName string      `json:"gst_registered_name"`
}

type LoginRequest struct {
	Phone string `json:"phone"`
}

// LoginResponse doubles as the register response. Success=false with a 200
// covers the "already registered" and "not registered" paths.
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}

// ProductWithPrice is a catalog row with the caller's price resolved.
type ProductWithPrice struct {
	models.Product
	UserPrice int64 `json:"user_price"`
}

type CartAddRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CartResponse struct {
	Items []models.CartItem `json:"items"`
	Total int64             `json:"total"`
}

type AddressCreateRequest struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	IsDefault    bool   `json:"is_default"`
}

type OrderCreateRequest struct {
	DeliveryAddressID string               `json:"delivery_address_id"`
	PaymentMethod     models.PaymentMethod `json:"payment_method"`
}

type RequestOrderCreateRequest struct {
	CementBrand           string `json:"cement_brand"`
	Quantity              int    `json:"quantity"`
	DeliveryLocation      string `json:"delivery_location"`
	Phone                 string `json:"phone"`
	PreferredDeliveryDate string `json:"preferred_delivery_date"`
}

type ProductCreateRequest struct {
	Name              string `json:"name"`
	Brand             string `json:"brand"`
	Description       string `json:"description"`
	BasePriceDealer   int64  `json:"base_price_dealer"`
	BasePriceRetailer int64  `json:"base_price_retailer"`
	BasePriceCustomer int64  `json:"base_price_customer"`
	MinQuantity       int    `json:"min_quantity"`
	StockAvailable    int    `json:"stock_available"`
	ImageURL          string `json:"image_url"`
}

// Pointer fields distinguish "not sent" from zero values on PATCH.
type ProductUpdateRequest struct {
	Name              *string `json:"name"`
	Brand             *string `json:"brand"`
	Description       *string `json:"description"`
	BasePriceDealer   *int64  `json:"base_price_dealer"`
	BasePriceRetailer *int64  `json:"base_price_retailer"`
	BasePriceCustomer *int64  `json:"base_price_customer"`
	StockAvailable    *int    `json:"stock_available"`
	IsActive          *bool   `json:"is_active"`
}

type OrderUpdateRequest struct {
	PaymentStatus *models.PaymentStatus `json:"payment_status"`
	OrderStatus   *models.OrderStatus   `json:"order_status"`
	DriverName    *string               `json:"driver_name"`
	DriverMobile  *string               `json:"driver_mobile"`
	VehicleNumber *string               `json:"vehicle_number"`
}

type RequestOrderUpdateRequest struct {
	Status     models.RequestStatus `json:"status"`
	AdminNotes *string              `json:"admin_notes"`
}

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SearchResponse struct {
	Total    int64            `json:"total"`
	Products []models.Product `json:"products"`
}
