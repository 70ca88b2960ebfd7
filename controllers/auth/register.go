package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"akshu/helpers"
	"akshu/models"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return helpers.JSONError(c, "Username and password are required.")
	}

	var existing models.User
	if err := h.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "Username already exists.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Registration failed.")
	}

	user := models.User{Username: req.Username, Password: string(hashed)}
	if err := h.db.Create(&user).Error; err != nil {
		log.Printf("[AUTH] ❌ Failed to create user %s: %v", req.Username, err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Registration failed.")
	}

	return helpers.JSONSuccess(c, "Registration successful! You can now log in.", nil)
}
