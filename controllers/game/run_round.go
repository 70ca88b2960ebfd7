package game

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"akshu/helpers"
)

// RunRound is the operator trigger for one full round cycle: generate the
// next round, then settle every bet that was waiting for it. The scheduler
// drives the same path on a timer.
func (h *Handler) RunRound(c *fiber.Ctx) error {
	round, err := h.game.RunRoundCycle()
	if err != nil {
		log.Printf("[GAME] ❌ Round cycle failed: %v", err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Round cycle failed.")
	}

	return helpers.JSONSuccess(c,
		fmt.Sprintf("Game Round %d completed.", round.RoundID),
		fiber.Map{
			"round_id":      round.RoundID,
			"winning_color": round.WinningColor,
		},
	)
}
