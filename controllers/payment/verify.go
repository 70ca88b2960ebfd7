package payment

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"akshu/helpers"
	"akshu/middlewares"
)

type VerifyRequest struct {
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// Verify checks the gateway signature and credits the wallet exactly once.
// The created -> credited flip and the credit commit together: a replayed
// callback claims zero rows and credits nothing, while a failed credit rolls
// the claim back so a retry can still deliver the tokens.
func (h *Handler) Verify(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if !h.razorpay.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		log.Printf("[PAYMENT] ❌ Signature mismatch for order %s", req.RazorpayOrderID)
		return helpers.JSONError(c, "Payment verification failed or signature mismatch.")
	}

	userID := middlewares.UserID(c)

	order, err := h.payments.FindOrder(req.RazorpayOrderID, userID)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "Payment order not found.")
	}

	balance, already, err := h.payments.ClaimAndCredit(order.OrderID, req.RazorpayPaymentID, userID, order.Tokens)
	if err != nil {
		log.Printf("[PAYMENT] ❌ Credit failed for order %s: %v", order.OrderID, err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Failed to credit wallet.")
	}
	if already {
		return helpers.JSONSuccess(c, "Payment already processed.", fiber.Map{
			"tokens_credited": order.Tokens,
		})
	}

	log.Printf("[PAYMENT] 💰 Credited %d tokens to user %d (balance %d)", order.Tokens, userID, balance)
	return helpers.JSONSuccess(c,
		fmt.Sprintf("Payment successful. %d tokens credited.", order.Tokens),
		fiber.Map{
			"tokens_credited": order.Tokens,
			"balance":         balance,
		},
	)
}
