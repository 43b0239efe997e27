package domain

import "time"

// Backup is the export document: all four collections plus the export
// timestamp. Its JSON shape is the legacy backup format and must stay
// compatible with files exported from the original storefront.
type Backup struct {
	Users      []User         `json:"users"`
	Orders     []Order        `json:"orders"`
	Cart       []CartItem     `json:"cart"`
	Wishlist   []WishlistItem `json:"wishlist"`
	ExportedAt time.Time      `json:"exportedAt"`
}
