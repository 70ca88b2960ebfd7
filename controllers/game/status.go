package game

import (
	"github.com/gofiber/fiber/v2"

	"akshu/helpers"
)

// Status reports the open round id, the betting-window countdown and the
// last ten processed results.
func (h *Handler) Status(c *fiber.Ctx) error {
	status, err := h.game.Status()
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Failed to fetch game status.")
	}

	return helpers.JSONSuccess(c, "Game status", fiber.Map{
		"current_round_id": status.CurrentRoundID,
		"time_remaining":   status.TimeRemaining,
		"past_results":     status.PastResults,
	})
}
