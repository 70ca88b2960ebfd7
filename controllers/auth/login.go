package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"akshu/helpers"
	"akshu/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	var user models.User
	if err := h.db.Where("username = ?", strings.TrimSpace(req.Username)).First(&user).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "Invalid username or password.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "Invalid username or password.")
	}

	session := models.Session{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTLHours * time.Hour),
	}
	if err := h.db.Create(&session).Error; err != nil {
		log.Printf("[AUTH] ❌ Failed to create session for %s: %v", user.Username, err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Login failed.")
	}

	// First login creates the wallet with the starting bonus.
	if wallet, err := h.wallets.GetOrCreate(user.ID); err != nil {
		log.Printf("[AUTH] ⚠️  Wallet init failed for user %d: %v", user.ID, err)
	} else {
		log.Printf("[AUTH] 💰 Wallet ready for user %d with %d tokens", user.ID, wallet.Balance)
	}

	return helpers.JSONSuccess(c, "Login successful.", fiber.Map{
		"username": user.Username,
		"token":    session.SID,
	})
}
