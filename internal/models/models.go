package models

import "time"

type User struct {
	ID                string     `gorm:"primaryKey"           json:"id"`
	Phone             string     `gorm:"uniqueIndex;not null" json:"phone"`
	Role              Role       `gorm:"not null"             json:"role"`
	Status            UserStatus `gorm:"not null"             json:"status"`
	Name              string     `json:"name,omitempty"`
	Email             string     `json:"email,omitempty"`
	BusinessName      string     `json:"business_name,omitempty"`
	BrandShopName     string     `json:"brand_shop_name,omitempty"`
	GSTNumber         string     `json:"gst_number,omitempty"`
	GSTRegisteredName string     `json:"gst_registered_name,omitempty"`
	IsActive          bool       `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type Product struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"not null"   json:"name"`
	Brand             string    `gorm:"not null"   json:"brand"`
	Description       string    `json:"description,omitempty"`
	BasePriceDealer   int64     `gorm:"not null" json:"base_price_dealer"`
	BasePriceRetailer int64     `gorm:"not null" json:"base_price_retailer"`
	BasePriceCustomer int64     `gorm:"not null" json:"base_price_customer"`
	MinQuantity       int       `gorm:"default:100"   json:"min_quantity"`
	StockAvailable    int       `gorm:"default:10000" json:"stock_available"`
	ImageURL          string    `json:"image_url,omitempty"`
	IsActive          bool      `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UnitPriceFor picks the stored price for a role. Admins see the customer
// price, they never order for themselves.
func (p *Product) UnitPriceFor(role Role) int64 {
	switch role {
	case RoleDealer:
		return p.BasePriceDealer
	case RoleRetailer:
		return p.BasePriceRetailer
	case RoleCustomer, RoleAdmin:
		return p.BasePriceCustomer
	}
	return p.BasePriceCustomer
}

type Address struct {
	ID           string    `gorm:"primaryKey"     json:"id"`
	UserID       string    `gorm:"index;not null" json:"user_id"`
	AddressLine1 string    `gorm:"not null"       json:"address_line1"`
	AddressLine2 string    `json:"address_line2,omitempty"`
	City         string    `gorm:"not null" json:"city"`
	State        string    `gorm:"not null" json:"state"`
	Pincode      string    `gorm:"not null" json:"pincode"`
	IsDefault    bool      `json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
}

type Cart struct {
	ID        string     `gorm:"primaryKey"           json:"id"`
	UserID    string     `gorm:"uniqueIndex;not null" json:"user_id"`
	Items     []CartItem `gorm:"foreignKey:CartID"    json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem snapshots the unit price at add time. Checkout never re-reads
// the catalog price.
type CartItem struct {
	ID        uint   `gorm:"primaryKey"     json:"-"`
	CartID    string `gorm:"index;not null" json:"-"`
	ProductID string `gorm:"not null"       json:"product_id"`
	Quantity  int    `gorm:"not null"       json:"quantity"`
	UnitPrice int64  `gorm:"not null"       json:"price_per_bag"`
}

type Order struct {
	ID                string        `gorm:"primaryKey"         json:"id"`
	UserID            string        `gorm:"index;not null"     json:"user_id"`
	OrderNumber       string        `gorm:"not null"           json:"order_number"`
	Items             []OrderItem   `gorm:"foreignKey:OrderID" json:"items"`
	Subtotal          int64         `gorm:"not null" json:"subtotal"`
	GSTAmount         int64         `gorm:"not null" json:"gst_amount"`
	SurchargeAmount   int64         `gorm:"not null" json:"surcharge_amount"`
	TotalAmount       int64         `gorm:"not null" json:"total_amount"`
	PaymentMethod     PaymentMethod `gorm:"not null" json:"payment_method"`
	PaymentStatus     PaymentStatus `gorm:"not null" json:"payment_status"`
	OrderStatus       OrderStatus   `gorm:"not null" json:"order_status"`
	DeliveryAddressID string        `gorm:"not null" json:"delivery_address_id"`
	DriverName        string        `json:"driver_name,omitempty"`
	DriverMobile      string        `json:"driver_mobile,omitempty"`
	VehicleNumber     string        `json:"vehicle_number,omitempty"`
	InvoiceURL        string        `json:"invoice_url,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

type OrderItem struct {
	ID          uint   `gorm:"primaryKey"     json:"-"`
	OrderID     string `gorm:"index;not null" json:"-"`
	ProductID   string `gorm:"not null"       json:"product_id"`
	ProductName string `gorm:"not null"       json:"product_name"`
	Quantity    int    `gorm:"not null"       json:"quantity"`
	UnitPrice   int64  `gorm:"not null"       json:"price_per_bag"`
	LineTotal   int64  `gorm:"not null"       json:"total_price"`
}

// RequestOrder is a bulk quotation request handled outside the cart flow.
type RequestOrder struct {
	ID                    string        `gorm:"primaryKey"     json:"id"`
	UserID                string        `gorm:"index;not null" json:"user_id"`
	CementBrand           string        `gorm:"not null"       json:"cement_brand"`
	Quantity              int           `gorm:"not null"       json:"quantity"`
	DeliveryLocation      string        `gorm:"not null"       json:"delivery_location"`
	Phone                 string        `gorm:"not null"       json:"phone"`
	PreferredDeliveryDate string        `json:"preferred_delivery_date,omitempty"`
	Status                RequestStatus `gorm:"not null" json:"status"`
	AdminNotes            string        `json:"admin_notes,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
}
