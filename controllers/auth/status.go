package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"akshu/middlewares"
	"akshu/models"
)

// Status is public: it reports whether the presented token maps to a live
// session without requiring one.
func (h *Handler) Status(c *fiber.Ctx) error {
	token := middlewares.BearerToken(c)

	if token != "" {
		var session models.Session
		if err := h.db.Preload("User").
			Where("s_id = ? AND expires_at > ?", token, time.Now()).
			First(&session).Error; err == nil {
			return c.JSON(fiber.Map{
				"isLoggedIn": true,
				"username":   session.User.Username,
			})
		}
	}

	return c.JSON(fiber.Map{
		"isLoggedIn": false,
		"username":   "Guest",
	})
}
