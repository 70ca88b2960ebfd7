package wallet

import (
	"github.com/gofiber/fiber/v2"

	"akshu/helpers"
	"akshu/middlewares"
	"akshu/services"
)

type Handler struct {
	wallets *services.WalletService
}

func NewHandler(wallets *services.WalletService) *Handler {
	return &Handler{wallets: wallets}
}

// Balance returns the caller's token balance, creating the wallet with the
// starting bonus on first touch.
func (h *Handler) Balance(c *fiber.Ctx) error {
	userID := middlewares.UserID(c)

	w, err := h.wallets.Balance(userID)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Failed to retrieve balance.")
	}

	return helpers.JSONSuccess(c, "Balance retrieved successfully", fiber.Map{
		"balance":      w.Balance,
		"last_updated": w.UpdatedAt.Format("2006-01-02 15:04:05"),
	})
}
