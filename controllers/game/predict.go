package game

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"akshu/helpers"
	"akshu/middlewares"
	"akshu/models"
	"akshu/repository"
	"akshu/services"
)

type PredictRequest struct {
	Prediction string `json:"prediction"`
	Amount     int64  `json:"amount"`
}

// Predict places a bet on the currently open round. Funds are reserved and
// the bet recorded atomically; on any rejection the balance is untouched.
func (h *Handler) Predict(c *fiber.Ctx) error {
	var req PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	userID := middlewares.UserID(c)

	newBalance, err := h.game.PlaceBet(userID, models.Color(req.Prediction), req.Amount)
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return helpers.JSONError(c, "Invalid prediction or amount.")
	case errors.Is(err, repository.ErrInsufficientFunds):
		return helpers.JSONErrorStatus(c, fiber.StatusPaymentRequired, "Insufficient Akshu Tokens.")
	case err != nil:
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Failed to place bet due to server error.")
	}

	return helpers.JSONSuccess(c,
		fmt.Sprintf("Bet of %d tokens on %s placed successfully.", req.Amount, req.Prediction),
		fiber.Map{"new_balance": newBalance},
	)
}
