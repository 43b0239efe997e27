package store_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/vintage-books/internal/domain"
	"github.com/spec-kit/vintage-books/internal/store"
)

func TestCreateOrderRequiresLogin(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.CreateOrder(context.Background(), domain.OrderInput{})
	assert.Equal(t, "NOT_LOGGED_IN", domainCode(t, err))
}

func TestCreateOrderSnapshotsCartAndClears(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	registerTestUser(t, st, "budi@example.com")

	cart, err := st.AddToCart(ctx, domain.CartItem{ID: "1", Title: "Laskar Pelangi", Price: 45000, Quantity: 2})
	require.NoError(t, err)

	items := make([]domain.OrderItem, len(cart))
	for i, line := range cart {
		items[i] = line.OrderItem()
	}

	order, err := st.CreateOrder(ctx, domain.OrderInput{
		Items:        items,
		Subtotal:     90000,
		ShippingCost: 15000,
		Tax:          9900,
		Total:        114900,
	})
	require.NoError(t, err)

	// Checkout cleared the cart.
	remaining, err := st.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	orders, err := st.GetOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	// The snapshot is unaffected by later cart mutations.
	_, err = st.AddToCart(ctx, domain.CartItem{ID: "2", Title: "Bumi Manusia", Price: 60000})
	require.NoError(t, err)

	stored, err := st.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Laskar Pelangi", stored.Items[0].Title)
	assert.Equal(t, int64(45000), stored.Items[0].Price)
	assert.Equal(t, int64(114900), stored.Total)
}

func TestCreateOrderDefaults(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	user := registerTestUser(t, st, "budi@example.com")

	order, err := st.CreateOrder(ctx, domain.OrderInput{City: "Surabaya"})
	require.NoError(t, err)

	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, "Budi Santoso", order.UserName)
	assert.Equal(t, "budi@example.com", order.UserEmail)

	// Shipping fields fall back to the profile unless supplied.
	assert.Equal(t, "Surabaya", order.ShippingAddress.City)
	assert.Equal(t, "Jl. Kenangan 1", order.ShippingAddress.Address)
	assert.Equal(t, "0812000111", order.ShippingAddress.Phone)
	assert.Equal(t, "40111", order.ShippingAddress.PostalCode)

	assert.Equal(t, "transfer", order.PaymentMethod)
	assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, domain.OrderStatusPending, order.OrderStatus)
	assert.NotNil(t, order.Items)
	assert.Empty(t, order.Items)
	assert.Zero(t, order.Subtotal)
	assert.Zero(t, order.Total)
}

func TestShippingAddressUnaffectedByProfileEdits(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	user := registerTestUser(t, st, "budi@example.com")

	order, err := st.CreateOrder(ctx, domain.OrderInput{})
	require.NoError(t, err)
	require.Equal(t, "Bandung", order.ShippingAddress.City)

	city := "Medan"
	_, err = st.UpdateUser(ctx, user.ID, domain.ProfilePatch{City: &city})
	require.NoError(t, err)

	stored, err := st.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bandung", stored.ShippingAddress.City)
}

func TestOrderNumberFormat(t *testing.T) {
	st, _ := newTestStore(t)

	// Clock base is 2024-03-05; date digits are fixed, suffix is random.
	pattern := regexp.MustCompile(`^VB240305\d{4}$`)
	for i := 0; i < 10; i++ {
		assert.Regexp(t, pattern, st.GenerateOrderNumber())
	}
}

func TestGetUserOrdersFilters(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	first := registerTestUser(t, st, "budi@example.com")
	_, err := st.CreateOrder(ctx, domain.OrderInput{})
	require.NoError(t, err)

	second := registerTestUser(t, st, "siti@example.com")
	_, err = st.CreateOrder(ctx, domain.OrderInput{})
	require.NoError(t, err)
	_, err = st.CreateOrder(ctx, domain.OrderInput{})
	require.NoError(t, err)

	firstOrders, err := st.GetUserOrders(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, firstOrders, 1)

	// Session currently belongs to the second user.
	mine, err := st.GetMyOrders(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, o := range mine {
		assert.Equal(t, second.ID, o.UserID)
	}
}

func TestGetMyOrdersWhenLoggedOut(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	registerTestUser(t, st, "budi@example.com")
	_, err := st.CreateOrder(ctx, domain.OrderInput{})
	require.NoError(t, err)
	require.NoError(t, st.Logout(ctx))

	mine, err := st.GetMyOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestUpdateOrderStatus(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	registerTestUser(t, st, "budi@example.com")
	order, err := st.CreateOrder(ctx, domain.OrderInput{})
	require.NoError(t, err)

	updated, err := st.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusShipping)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipping, updated.OrderStatus)
	assert.True(t, updated.UpdatedAt.After(order.UpdatedAt))

	// Any status string is accepted.
	updated, err = st.UpdateOrderStatus(ctx, order.ID, domain.OrderStatus("misplaced"))
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatus("misplaced"), updated.OrderStatus)

	_, err = st.UpdateOrderStatus(ctx, "missing", domain.OrderStatusDelivered)
	assert.Equal(t, "NOT_FOUND", domainCode(t, err))
}

func TestInitSeedsRequiredCollections(t *testing.T) {
	_, medium := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{store.KeyUsers, store.KeyOrders} {
		raw, err := medium.Get(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(raw))
	}
}
