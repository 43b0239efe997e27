package dto

// CartItemRequest payload for adding a product to the cart.
type CartItemRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Image    string `json:"image"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

// CartQuantityRequest payload for setting a line quantity.
type CartQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// CartSummaryResponse carries the derived cart figures.
type CartSummaryResponse struct {
	Total int64 `json:"total"`
	Count int64 `json:"count"`
}
