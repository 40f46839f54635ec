package models

type Role string

const (
	RoleDealer   Role = "DEALER"
	RoleRetailer Role = "RETAILER"
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDealer, RoleRetailer, RoleCustomer, RoleAdmin:
		return true
	}
	return false
}

// RequiresApproval reports whether accounts with this role start PENDING
// and trade only after an admin approves them.
func (r Role) RequiresApproval() bool {
	switch r {
	case RoleDealer, RoleRetailer:
		return true
	case RoleCustomer, RoleAdmin:
		return false
	}
	return false
}

type UserStatus string

const (
	UserPending  UserStatus = "PENDING"
	UserApproved UserStatus = "APPROVED"
	UserRejected UserStatus = "REJECTED"
)

type PaymentMethod string

const (
	PaymentUPI          PaymentMethod = "UPI"
	PaymentCard         PaymentMethod = "CARD"
	PaymentNetbanking   PaymentMethod = "NETBANKING"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentCOD          PaymentMethod = "COD"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentUPI, PaymentCard, PaymentNetbanking, PaymentBankTransfer, PaymentCOD:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentReceived PaymentStatus = "RECEIVED"
	PaymentFailed   PaymentStatus = "FAILED"
)

// CanTransition covers the admin side of the payment machine. The user-side
// re-submission path resets to PENDING through its own endpoint and is not
// expressed here.
func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	switch s {
	case PaymentPending:
		return to == PaymentReceived || to == PaymentFailed
	case PaymentReceived, PaymentFailed:
		return false
	}
	return false
}

type OrderStatus string

const (
	OrderPending         OrderStatus = "PENDING"
	OrderPaymentReceived OrderStatus = "PAYMENT_RECEIVED"
	OrderAssigned        OrderStatus = "ASSIGNED"
	OrderOutForDelivery  OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered       OrderStatus = "DELIVERED"
	OrderCancelled       OrderStatus = "CANCELLED"
)

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransition enforces the delivery chain
// PENDING -> PAYMENT_RECEIVED -> ASSIGNED -> OUT_FOR_DELIVERY -> DELIVERED,
// with CANCELLED reachable from any non-terminal state.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if to == OrderCancelled {
		return !s.Terminal()
	}
	switch s {
	case OrderPending:
		return to == OrderPaymentReceived
	case OrderPaymentReceived:
		return to == OrderAssigned
	case OrderAssigned:
		return to == OrderOutForDelivery
	case OrderOutForDelivery:
		return to == OrderDelivered
	case OrderDelivered, OrderCancelled:
		return false
	}
	return false
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

func (s RequestStatus) CanTransition(to RequestStatus) bool {
	return s == RequestPending && (to == RequestApproved || to == RequestRejected)
}
