package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vintage-books/internal/api/dto"
	"github.com/spec-kit/vintage-books/internal/store"
	apperrors "github.com/spec-kit/vintage-books/pkg/util"
)

// BackupHandler exposes export, import and reset of the whole profile.
type BackupHandler struct {
	store *store.Store
}

// NewBackupHandler constructs handler.
func NewBackupHandler(st *store.Store) *BackupHandler {
	return &BackupHandler{store: st}
}

// Export handles GET /backup/export, offering the document as a download.
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	backup, err := h.store.Export(c.UserContext())
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	filename := fmt.Sprintf("vintage_books_backup_%d.json", backup.ExportedAt.UnixMilli())
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(raw)
}

// Import handles POST /backup/import. The body is the backup document; any
// collection fields present are restored verbatim.
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	if err := h.store.Import(c.UserContext(), c.Body()); err != nil {
		return err
	}
	return c.JSON(dto.OK("data imported", nil))
}

// Reset handles POST /backup/reset. Destructive; refuses without an explicit
// confirm flag.
func (h *BackupHandler) Reset(c *fiber.Ctx) error {
	var req dto.ResetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewParseError(err)
	}
	if !req.Confirm {
		return apperrors.NewValidationError("reset requires confirmation", map[string]any{"confirm": false})
	}

	if err := h.store.Reset(c.UserContext()); err != nil {
		return err
	}
	return c.JSON(dto.OK("all data cleared", nil))
}
