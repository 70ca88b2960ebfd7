package middlewares

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akshu/helpers"
	"akshu/models"
)

// UserAuth resolves the bearer session token to an authenticated user and
// stores the identity in locals for the handlers behind it.
func UserAuth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" {
			return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "Unauthorized access. Please log in.")
		}

		var session models.Session
		if err := db.Preload("User").
			Where("s_id = ? AND expires_at > ?", token, time.Now()).
			First(&session).Error; err != nil {
			return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "Unauthorized access. Please log in.")
		}

		c.Locals("user_id", session.UserID)
		c.Locals("username", session.User.Username)
		c.Locals("session_id", session.SID)
		return c.Next()
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Headers without the Bearer scheme yield an empty string.
func BearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// UserID returns the authenticated user id set by UserAuth.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}

// Username returns the authenticated username set by UserAuth.
func Username(c *fiber.Ctx) string {
	name, _ := c.Locals("username").(string)
	return name
}
