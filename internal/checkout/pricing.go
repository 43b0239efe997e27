// Package checkout carries the pricing policy the storefront applies before
// handing an order to the store. The store trusts the resulting totals
// verbatim; this package is the single place they come from on the trusted
// path.
package checkout

import "github.com/spec-kit/vintage-books/internal/domain"

const (
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold int64 = 100000
	// FlatShippingCost applies below the free-shipping threshold.
	FlatShippingCost int64 = 15000
	// TaxRatePercent is the 11% levy applied to the subtotal.
	TaxRatePercent int64 = 11
)

// Pricing is the priced breakdown of a cart. Integer currency units.
type Pricing struct {
	Subtotal     int64 `json:"subtotal"`
	ShippingCost int64 `json:"shippingCost"`
	Tax          int64 `json:"tax"`
	Total        int64 `json:"total"`
}

// Quote prices the given cart: subtotal over price*quantity, flat shipping
// under the free threshold, tax rounded half-up to the nearest unit.
func Quote(items []domain.CartItem) Pricing {
	var subtotal int64
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}

	var shipping int64
	if subtotal < FreeShippingThreshold {
		shipping = FlatShippingCost
	}

	tax := (subtotal*TaxRatePercent + 50) / 100

	return Pricing{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          tax,
		Total:        subtotal + shipping + tax,
	}
}
