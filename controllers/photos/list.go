package photos

import (
	"github.com/gofiber/fiber/v2"

	"akshu/helpers"
	"akshu/middlewares"
	"akshu/models"
)

func (h *Handler) List(c *fiber.Ctx) error {
	userID := middlewares.UserID(c)

	var photos []models.Photo
	if err := h.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&photos).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Failed to retrieve photos.")
	}

	list := make([]fiber.Map, 0, len(photos))
	for _, p := range photos {
		list = append(list, fiber.Map{
			"id":          p.ID,
			"url":         p.URL,
			"public_id":   p.PublicID,
			"uploaded_at": p.CreatedAt.Format("2006-01-02 15:04:05"),
			"location":    p.Location,
		})
	}

	return helpers.JSONSuccess(c, "Photos retrieved", fiber.Map{"photos": list})
}
