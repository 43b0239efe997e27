package store

import (
	"context"
	"encoding/json"

	"github.com/spec-kit/vintage-books/internal/domain"
	"github.com/spec-kit/vintage-books/pkg/util"
)

// Export collects all four collections into one backup document stamped with
// the export time.
func (s *Store) Export(ctx context.Context) (domain.Backup, error) {
	users, err := readCollection[domain.User](ctx, s, KeyUsers)
	if err != nil {
		return domain.Backup{}, err
	}
	orders, err := readCollection[domain.Order](ctx, s, KeyOrders)
	if err != nil {
		return domain.Backup{}, err
	}
	cart, err := readCollection[domain.CartItem](ctx, s, KeyCart)
	if err != nil {
		return domain.Backup{}, err
	}
	wishlist, err := readCollection[domain.WishlistItem](ctx, s, KeyWishlist)
	if err != nil {
		return domain.Backup{}, err
	}

	return domain.Backup{
		Users:      users,
		Orders:     orders,
		Cart:       cart,
		Wishlist:   wishlist,
		ExportedAt: s.now(),
	}, nil
}

// importDoc keeps the collections raw so present fields are written back
// verbatim, without shape validation, and absent fields are left untouched.
type importDoc struct {
	Users    json.RawMessage `json:"users"`
	Orders   json.RawMessage `json:"orders"`
	Cart     json.RawMessage `json:"cart"`
	Wishlist json.RawMessage `json:"wishlist"`
}

// Import restores any subset of the four collections from a backup document.
// Invalid JSON fails with a parse error; nothing is written in that case.
func (s *Store) Import(ctx context.Context, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc importDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return util.NewParseError(err)
	}

	for key, value := range map[string]json.RawMessage{
		KeyUsers:    doc.Users,
		KeyOrders:   doc.Orders,
		KeyCart:     doc.Cart,
		KeyWishlist: doc.Wishlist,
	} {
		if len(value) == 0 || string(value) == "null" {
			continue
		}
		if err := s.storage.Set(ctx, key, value); err != nil {
			return util.NewStorageError(err)
		}
	}

	s.logger.Info("data imported")
	return nil
}

// Reset erases all five stored entries and reseeds the users and orders
// collections. Interactive confirmation is the caller's responsibility.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{KeyUsers, KeyCurrentUser, KeyOrders, KeyCart, KeyWishlist} {
		if err := s.storage.Remove(ctx, key); err != nil {
			return util.NewStorageError(err)
		}
	}
	if err := s.initLocked(ctx); err != nil {
		return err
	}

	s.logger.Info("all data cleared")
	return nil
}
