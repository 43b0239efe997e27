package store

import (
	"context"

	"github.com/spec-kit/vintage-books/internal/domain"
	"github.com/spec-kit/vintage-books/pkg/util"
)

// GetWishlist returns the wishlist, defaulting to an empty sequence.
func (s *Store) GetWishlist(ctx context.Context) ([]domain.WishlistItem, error) {
	return readCollection[domain.WishlistItem](ctx, s, KeyWishlist)
}

// AddToWishlist appends the item unless its product is already saved, in
// which case it fails with a duplicate-item error and leaves the collection
// unchanged.
func (s *Store) AddToWishlist(ctx context.Context, item domain.WishlistItem) ([]domain.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wishlist, err := readCollection[domain.WishlistItem](ctx, s, KeyWishlist)
	if err != nil {
		return nil, err
	}

	for _, w := range wishlist {
		if w.ID == item.ID {
			return nil, util.NewDuplicateItem(item.ID)
		}
	}

	item.AddedAt = s.now()
	wishlist = append(wishlist, item)

	if err := writeCollection(ctx, s, KeyWishlist, wishlist); err != nil {
		return nil, err
	}
	return wishlist, nil
}

// RemoveFromWishlist filters out the entry matching id. Idempotent.
func (s *Store) RemoveFromWishlist(ctx context.Context, id string) ([]domain.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wishlist, err := readCollection[domain.WishlistItem](ctx, s, KeyWishlist)
	if err != nil {
		return nil, err
	}

	kept := []domain.WishlistItem{}
	for _, item := range wishlist {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	if err := writeCollection(ctx, s, KeyWishlist, kept); err != nil {
		return nil, err
	}
	return kept, nil
}
