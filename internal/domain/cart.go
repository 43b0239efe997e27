package domain

import "time"

// CartItem is a product snapshot plus quantity, keyed by product ID.
type CartItem struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Author   string    `json:"author,omitempty"`
	Image    string    `json:"image,omitempty"`
	Price    int64     `json:"price"`
	Quantity int64     `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

// OrderItem converts a cart line into a purchase line, locking the price.
func (c CartItem) OrderItem() OrderItem {
	return OrderItem{
		ID:       c.ID,
		Title:    c.Title,
		Author:   c.Author,
		Image:    c.Image,
		Price:    c.Price,
		Quantity: c.Quantity,
	}
}
