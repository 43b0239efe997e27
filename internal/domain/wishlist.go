package domain

import "time"

// WishlistItem is a product snapshot saved for later. Uniqueness per product
// ID is enforced by the store's add operation.
type WishlistItem struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Author  string    `json:"author,omitempty"`
	Image   string    `json:"image,omitempty"`
	Price   int64     `json:"price"`
	AddedAt time.Time `json:"addedAt"`
}
