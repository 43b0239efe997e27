package dto

// CheckoutRequest payload for placing an order from the current cart.
// Shipping fields left empty fall back to the session user's profile.
type CheckoutRequest struct {
	FullName      string `json:"fullName"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`
}

// OrderStatusRequest payload for fulfillment updates.
type OrderStatusRequest struct {
	Status string `json:"status"`
}
