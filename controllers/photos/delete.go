package photos

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"akshu/helpers"
	"akshu/middlewares"
	"akshu/models"
)

// Delete removes the remote object first, then the row. Ownership is
// checked before anything is touched.
func (h *Handler) Delete(c *fiber.Ctx) error {
	userID := middlewares.UserID(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "Invalid photo id.")
	}

	var photo models.Photo
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&photo).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "Photo not found or unauthorized.")
	}

	if h.storage != nil {
		if err := h.storage.Destroy(c.Context(), photo.PublicID); err != nil {
			log.Printf("[PHOTOS] ❌ Delete error for %s: %v", photo.PublicID, err)
			return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Deletion failed.")
		}
	}

	if err := h.db.Delete(&photo).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Deletion failed.")
	}

	return helpers.JSONSuccess(c, "Photo deleted successfully.", nil)
}
