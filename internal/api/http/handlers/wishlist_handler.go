package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vintage-books/internal/api/dto"
	"github.com/spec-kit/vintage-books/internal/domain"
	"github.com/spec-kit/vintage-books/internal/store"
	apperrors "github.com/spec-kit/vintage-books/pkg/util"
)

// WishlistHandler exposes the wishlist endpoints.
type WishlistHandler struct {
	store *store.Store
}

// NewWishlistHandler constructs handler.
func NewWishlistHandler(st *store.Store) *WishlistHandler {
	return &WishlistHandler{store: st}
}

// List handles GET /wishlist.
func (h *WishlistHandler) List(c *fiber.Ctx) error {
	wishlist, err := h.store.GetWishlist(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("wishlist", fiber.Map{"wishlist": wishlist}))
}

// Add handles POST /wishlist/items.
func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	var req dto.WishlistItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewParseError(err)
	}
	if req.ID == "" {
		return apperrors.NewValidationError("item id required", nil)
	}

	wishlist, err := h.store.AddToWishlist(c.UserContext(), domain.WishlistItem{
		ID:     req.ID,
		Title:  req.Title,
		Author: req.Author,
		Image:  req.Image,
		Price:  req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("item added to wishlist", fiber.Map{"wishlist": wishlist}))
}

// Remove handles DELETE /wishlist/items/:id.
func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	wishlist, err := h.store.RemoveFromWishlist(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("item removed from wishlist", fiber.Map{"wishlist": wishlist}))
}
