package contacts

import (
	"github.com/gofiber/fiber/v2"

	"akshu/helpers"
	"akshu/middlewares"
	"akshu/models"
)

func (h *Handler) List(c *fiber.Ctx) error {
	userID := middlewares.UserID(c)

	var contacts []models.Contact
	if err := h.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&contacts).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Failed to retrieve contacts.")
	}

	list := make([]fiber.Map, 0, len(contacts))
	for _, contact := range contacts {
		list = append(list, fiber.Map{
			"id":         contact.ID,
			"name":       contact.Name,
			"phone":      contact.Phone,
			"email":      contact.Email,
			"created_at": contact.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return helpers.JSONSuccess(c, "Contacts retrieved", fiber.Map{"contacts": list})
}
