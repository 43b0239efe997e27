package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vintage-books/internal/api/dto"
	"github.com/spec-kit/vintage-books/internal/checkout"
	"github.com/spec-kit/vintage-books/internal/domain"
	"github.com/spec-kit/vintage-books/internal/store"
	apperrors "github.com/spec-kit/vintage-books/pkg/util"
)

// OrdersHandler exposes checkout and order endpoints.
type OrdersHandler struct {
	store *store.Store
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(st *store.Store) *OrdersHandler {
	return &OrdersHandler{store: st}
}

// Quote handles GET /checkout/quote: prices the live cart without ordering.
func (h *OrdersHandler) Quote(c *fiber.Ctx) error {
	cart, err := h.store.GetCart(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("checkout quote", checkout.Quote(cart)))
}

// Checkout handles POST /checkout. Preconditions (logged-in session,
// non-empty cart) are checked here, not inside order creation, matching the
// caller-side contract. Totals are computed from the live cart so the trusted
// path always hands the store self-consistent figures.
func (h *OrdersHandler) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewParseError(err)
	}

	ctx := c.UserContext()

	loggedIn, err := h.store.IsLoggedIn(ctx)
	if err != nil {
		return err
	}
	if !loggedIn {
		return apperrors.NewNotLoggedIn()
	}

	cart, err := h.store.GetCart(ctx)
	if err != nil {
		return err
	}
	if len(cart) == 0 {
		return apperrors.NewValidationError("cart is empty", nil)
	}

	items := make([]domain.OrderItem, len(cart))
	for i, line := range cart {
		items[i] = line.OrderItem()
	}
	pricing := checkout.Quote(cart)

	order, err := h.store.CreateOrder(ctx, domain.OrderInput{
		FullName:      req.FullName,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		PostalCode:    req.PostalCode,
		Items:         items,
		Subtotal:      pricing.Subtotal,
		ShippingCost:  pricing.ShippingCost,
		Tax:           pricing.Tax,
		Total:         pricing.Total,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.OK("order created", fiber.Map{"order": order}))
}

// List handles GET /orders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	orders, err := h.store.GetOrders(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("orders", fiber.Map{"orders": orders}))
}

// My handles GET /orders/my: the session user's orders, empty when logged out.
func (h *OrdersHandler) My(c *fiber.Ctx) error {
	orders, err := h.store.GetMyOrders(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("my orders", fiber.Map{"orders": orders}))
}

// Get handles GET /orders/:id.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	order, err := h.store.GetOrderByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("order", fiber.Map{"order": order}))
}

// ListByUser handles GET /users/:id/orders.
func (h *OrdersHandler) ListByUser(c *fiber.Ctx) error {
	orders, err := h.store.GetUserOrders(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("user orders", fiber.Map{"orders": orders}))
}

// UpdateStatus handles PUT /orders/:id/status.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.OrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewParseError(err)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	order, err := h.store.UpdateOrderStatus(c.UserContext(), c.Params("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("order status updated", fiber.Map{"order": order}))
}
