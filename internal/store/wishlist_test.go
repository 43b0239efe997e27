package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/vintage-books/internal/domain"
)

func TestAddToWishlistRejectsDuplicate(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	item := domain.WishlistItem{ID: "1", Title: "Laskar Pelangi", Price: 45000}

	wishlist, err := st.AddToWishlist(ctx, item)
	require.NoError(t, err)
	require.Len(t, wishlist, 1)
	assert.False(t, wishlist[0].AddedAt.IsZero())

	_, err = st.AddToWishlist(ctx, item)
	assert.Equal(t, "DUPLICATE_ITEM", domainCode(t, err))

	wishlist, err = st.GetWishlist(ctx)
	require.NoError(t, err)
	assert.Len(t, wishlist, 1)
}

func TestRemoveFromWishlistIsIdempotent(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	_, err := st.AddToWishlist(ctx, domain.WishlistItem{ID: "1", Title: "Bumi Manusia"})
	require.NoError(t, err)

	wishlist, err := st.RemoveFromWishlist(ctx, "missing")
	require.NoError(t, err)
	assert.Len(t, wishlist, 1)

	wishlist, err = st.RemoveFromWishlist(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, wishlist)
}

func TestGetWishlistDefaultsEmpty(t *testing.T) {
	st, _ := newTestStore(t)

	wishlist, err := st.GetWishlist(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, wishlist)
	assert.Empty(t, wishlist)
}
