package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vintage-books/internal/api/dto"
	"github.com/spec-kit/vintage-books/internal/domain"
	"github.com/spec-kit/vintage-books/internal/store"
	apperrors "github.com/spec-kit/vintage-books/pkg/util"
)

// CartHandler exposes the shopping cart endpoints.
type CartHandler struct {
	store *store.Store
}

// NewCartHandler constructs handler.
func NewCartHandler(st *store.Store) *CartHandler {
	return &CartHandler{store: st}
}

// List handles GET /cart.
func (h *CartHandler) List(c *fiber.Ctx) error {
	cart, err := h.store.GetCart(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("cart", fiber.Map{"cart": cart}))
}

// Add handles POST /cart/items.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req dto.CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewParseError(err)
	}
	if req.ID == "" {
		return apperrors.NewValidationError("item id required", nil)
	}

	cart, err := h.store.AddToCart(c.UserContext(), domain.CartItem{
		ID:       req.ID,
		Title:    req.Title,
		Author:   req.Author,
		Image:    req.Image,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("item added to cart", fiber.Map{"cart": cart}))
}

// UpdateQuantity handles PUT /cart/items/:id.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var req dto.CartQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewParseError(err)
	}

	cart, err := h.store.UpdateCartQuantity(c.UserContext(), c.Params("id"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("quantity updated", fiber.Map{"cart": cart}))
}

// Remove handles DELETE /cart/items/:id.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	cart, err := h.store.RemoveFromCart(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("item removed from cart", fiber.Map{"cart": cart}))
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.store.ClearCart(c.UserContext()); err != nil {
		return err
	}
	return c.JSON(dto.OK("cart cleared", nil))
}

// Summary handles GET /cart/summary.
func (h *CartHandler) Summary(c *fiber.Ctx) error {
	total, err := h.store.GetCartTotal(c.UserContext())
	if err != nil {
		return err
	}
	count, err := h.store.GetCartCount(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("cart summary", dto.CartSummaryResponse{Total: total, Count: count}))
}
