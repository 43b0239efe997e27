package dto

// WishlistItemRequest payload for saving a product for later.
type WishlistItemRequest struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Image  string `json:"image"`
	Price  int64  `json:"price"`
}
