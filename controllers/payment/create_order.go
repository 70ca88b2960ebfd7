package payment

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"akshu/helpers"
	"akshu/middlewares"
	"akshu/models"
)

type CreateOrderRequest struct {
	AmountTokens int64 `json:"amount_tokens"`
}

// CreateOrder opens a Razorpay order for a token purchase. 1 token = 1 INR;
// the gateway wants the amount in paise.
func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.AmountTokens < MinimumTokens {
		return helpers.JSONError(c, fmt.Sprintf("Minimum purchase is %d tokens.", MinimumTokens))
	}

	userID := middlewares.UserID(c)

	amountPaise := decimal.NewFromInt(req.AmountTokens).
		Mul(decimal.NewFromInt(100)).
		IntPart()
	receipt := fmt.Sprintf("receipt_%d_%d", userID, time.Now().Unix())

	notes := map[string]any{
		"user_id": userID,
		"tokens":  req.AmountTokens,
	}

	order, err := h.razorpay.CreateOrder(amountPaise, "INR", receipt, notes)
	if err != nil {
		log.Printf("[PAYMENT] ❌ Razorpay order creation error: %v", err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Failed to create payment order.")
	}

	notesJSON, _ := json.Marshal(notes)
	record := models.PaymentOrder{
		UserID:      userID,
		OrderID:     order.ID,
		Receipt:     receipt,
		AmountPaise: order.Amount,
		Currency:    order.Currency,
		Tokens:      req.AmountTokens,
		Status:      models.PaymentCreated,
		Notes:       notesJSON,
	}
	if err := h.payments.Create(&record); err != nil {
		log.Printf("[PAYMENT] ❌ Failed to persist order %s: %v", order.ID, err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "Failed to create payment order.")
	}

	return helpers.JSONSuccess(c, "Order created", fiber.Map{
		"order_id": order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
		"key_id":   h.razorpay.KeyID(),
	})
}
