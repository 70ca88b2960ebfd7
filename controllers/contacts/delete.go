package contacts

import (
	"github.com/gofiber/fiber/v2"

	"akshu/helpers"
	"akshu/middlewares"
	"akshu/models"
)

func (h *Handler) Delete(c *fiber.Ctx) error {
	userID := middlewares.UserID(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "Invalid contact id.")
	}

	result := h.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Contact{})
	if result.Error != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Failed to delete contact.")
	}
	if result.RowsAffected == 0 {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "Contact not found or unauthorized.")
	}

	return helpers.JSONSuccess(c, "Contact deleted successfully.", nil)
}
