package payment

import (
	"akshu/providers"
	"akshu/repository"
)

// MinimumTokens is the smallest purchase the top-up path accepts.
const MinimumTokens int64 = 100

type Handler struct {
	payments repository.PaymentRepository
	razorpay providers.RazorpayClient
}

func NewHandler(payments repository.PaymentRepository, razorpay providers.RazorpayClient) *Handler {
	return &Handler{payments: payments, razorpay: razorpay}
}
