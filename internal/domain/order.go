package domain

import "time"

// OrderStatus enumerates the fulfillment lifecycle. UpdateOrderStatus accepts
// any string by contract; these constants name the known states.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipping   OrderStatus = "shipping"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus enumerates payment states.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// ShippingAddress is a snapshot of the delivery destination taken at checkout.
// Later profile edits never touch it.
type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// OrderItem is one purchased line with its price locked at purchase time.
type OrderItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author,omitempty"`
	Image    string `json:"image,omitempty"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

// Order is the purchase aggregate. Items and ShippingAddress are immutable
// snapshots of the cart and purchaser at creation time.
type Order struct {
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber"`
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
	UserEmail   string `json:"userEmail"`

	ShippingAddress ShippingAddress `json:"shippingAddress"`

	Items []OrderItem `json:"items"`

	Subtotal     int64 `json:"subtotal"`
	ShippingCost int64 `json:"shippingCost"`
	Tax          int64 `json:"tax"`
	Total        int64 `json:"total"`

	PaymentMethod string        `json:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`

	OrderStatus OrderStatus `json:"orderStatus"`

	Notes string `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderInput is the checkout payload the store trusts verbatim: totals are not
// recomputed against items at creation time.
type OrderInput struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`

	Items []OrderItem `json:"items"`

	Subtotal     int64 `json:"subtotal"`
	ShippingCost int64 `json:"shippingCost"`
	Tax          int64 `json:"tax"`
	Total        int64 `json:"total"`

	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`
}
