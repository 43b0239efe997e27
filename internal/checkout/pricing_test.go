package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/vintage-books/internal/checkout"
	"github.com/spec-kit/vintage-books/internal/domain"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		cart []domain.CartItem
		want checkout.Pricing
	}{
		{
			name: "below free shipping threshold",
			cart: []domain.CartItem{{ID: "1", Price: 40000, Quantity: 2}},
			want: checkout.Pricing{Subtotal: 80000, ShippingCost: 15000, Tax: 8800, Total: 103800},
		},
		{
			name: "above free shipping threshold",
			cart: []domain.CartItem{{ID: "1", Price: 50000, Quantity: 3}},
			want: checkout.Pricing{Subtotal: 150000, ShippingCost: 0, Tax: 16500, Total: 166500},
		},
		{
			name: "exactly at threshold ships free",
			cart: []domain.CartItem{{ID: "1", Price: 100000, Quantity: 1}},
			want: checkout.Pricing{Subtotal: 100000, ShippingCost: 0, Tax: 11000, Total: 111000},
		},
		{
			name: "tax rounds half up",
			cart: []domain.CartItem{{ID: "1", Price: 45005, Quantity: 1}},
			// 45005 * 0.11 = 4950.55 -> 4951
			want: checkout.Pricing{Subtotal: 45005, ShippingCost: 15000, Tax: 4951, Total: 64956},
		},
		{
			name: "empty cart",
			cart: nil,
			want: checkout.Pricing{Subtotal: 0, ShippingCost: 15000, Tax: 0, Total: 15000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkout.Quote(tt.cart))
		})
	}
}
