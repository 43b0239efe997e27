package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vintage-books/internal/api/dto"
	"github.com/spec-kit/vintage-books/internal/auth"
	"github.com/spec-kit/vintage-books/internal/domain"
	"github.com/spec-kit/vintage-books/internal/store"
	apperrors "github.com/spec-kit/vintage-books/pkg/util"
)

// UsersHandler exposes registration, session and profile endpoints.
type UsersHandler struct {
	store  *store.Store
	tokens *auth.TokenManager
}

// NewUsersHandler constructs handler.
func NewUsersHandler(st *store.Store, tokens *auth.TokenManager) *UsersHandler {
	return &UsersHandler{store: st, tokens: tokens}
}

// Register handles POST /auth/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewParseError(err)
	}

	user, err := h.store.Register(c.UserContext(), domain.RegisterInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return err
	}

	token, exp, err := h.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	return c.Status(http.StatusCreated).JSON(dto.OK("registration successful", fiber.Map{
		"user": user,
		"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
	}))
}

// Login handles POST /auth/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewParseError(err)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, err := h.store.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	token, exp, err := h.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	return c.JSON(dto.OK("login successful", fiber.Map{
		"user": user,
		"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
	}))
}

// Logout handles POST /auth/logout. Idempotent.
func (h *UsersHandler) Logout(c *fiber.Ctx) error {
	if err := h.store.Logout(c.UserContext()); err != nil {
		return err
	}
	return c.JSON(dto.OK("logout successful", nil))
}

// Me handles GET /auth/me.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}
	return c.JSON(dto.OK("current user", fiber.Map{"user": user}))
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.store.GetUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("users", fiber.Map{"users": users}))
}

// Get handles GET /users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	user, err := h.store.GetUserByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("user", fiber.Map{"user": user}))
}

// Update handles PUT /users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewParseError(err)
	}

	user, err := h.store.UpdateUser(c.UserContext(), c.Params("id"), domain.ProfilePatch{
		FullName:   req.FullName,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("profile updated", fiber.Map{"user": user}))
}
