package store

import (
	"context"

	"github.com/spec-kit/vintage-books/internal/domain"
)

// GetCart returns the cart, defaulting to an empty sequence.
func (s *Store) GetCart(ctx context.Context) ([]domain.CartItem, error) {
	return readCollection[domain.CartItem](ctx, s, KeyCart)
}

// AddToCart appends the item, or when the product is already present bumps
// its quantity by the incoming one (default 1). The existing snapshot keeps
// its price and metadata; the new call never overwrites them.
func (s *Store) AddToCart(ctx context.Context, item domain.CartItem) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := readCollection[domain.CartItem](ctx, s, KeyCart)
	if err != nil {
		return nil, err
	}

	qty := item.Quantity
	if qty == 0 {
		qty = 1
	}

	found := false
	for i := range cart {
		if cart[i].ID == item.ID {
			cart[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		item.Quantity = qty
		item.AddedAt = s.now()
		cart = append(cart, item)
	}

	if err := writeCollection(ctx, s, KeyCart, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveFromCart filters out every entry matching id. Idempotent.
func (s *Store) RemoveFromCart(ctx context.Context, id string) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := readCollection[domain.CartItem](ctx, s, KeyCart)
	if err != nil {
		return nil, err
	}

	kept := []domain.CartItem{}
	for _, item := range cart {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	if err := writeCollection(ctx, s, KeyCart, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// UpdateCartQuantity writes the quantity as given for the matching entry.
// No lower bound is applied and a missing entry is not an error, per the
// legacy contract.
func (s *Store) UpdateCartQuantity(ctx context.Context, id string, quantity int64) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := readCollection[domain.CartItem](ctx, s, KeyCart)
	if err != nil {
		return nil, err
	}

	for i := range cart {
		if cart[i].ID == id {
			cart[i].Quantity = quantity
			if err := writeCollection(ctx, s, KeyCart, cart); err != nil {
				return nil, err
			}
			break
		}
	}
	return cart, nil
}

// ClearCart replaces the cart with an empty sequence.
func (s *Store) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeCollection(ctx, s, KeyCart, []domain.CartItem{})
}

// GetCartTotal sums price times quantity over the cart.
func (s *Store) GetCartTotal(ctx context.Context) (int64, error) {
	cart, err := readCollection[domain.CartItem](ctx, s, KeyCart)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, item := range cart {
		total += item.Price * item.Quantity
	}
	return total, nil
}

// GetCartCount sums quantities over the cart.
func (s *Store) GetCartCount(ctx context.Context) (int64, error) {
	cart, err := readCollection[domain.CartItem](ctx, s, KeyCart)
	if err != nil {
		return 0, err
	}
	var count int64
	for _, item := range cart {
		count += item.Quantity
	}
	return count, nil
}
