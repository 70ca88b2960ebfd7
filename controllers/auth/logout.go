package auth

import (
	"github.com/gofiber/fiber/v2"

	"akshu/helpers"
	"akshu/models"
)

func (h *Handler) Logout(c *fiber.Ctx) error {
	sid, _ := c.Locals("session_id").(string)
	if sid != "" {
		h.db.Where("s_id = ?", sid).Delete(&models.Session{})
	}
	return helpers.JSONSuccess(c, "Logged out successfully.", nil)
}
