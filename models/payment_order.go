package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentCreated  PaymentStatus = "created"
	PaymentCredited PaymentStatus = "credited"
)

// PaymentOrder tracks a Razorpay token purchase from order creation until
// the wallet is credited. The created -> credited transition is guarded in
// SQL so a replayed verification never credits twice.
type PaymentOrder struct {
	gorm.Model

	UserID      uint           `gorm:"index" json:"user_id"`
	OrderID     string         `gorm:"size:64;uniqueIndex" json:"order_id"`
	Receipt     string         `gorm:"size:128" json:"receipt"`
	AmountPaise int64          `json:"amount_paise"`
	Currency    string         `gorm:"size:8" json:"currency"`
	Tokens      int64          `json:"tokens"`
	Status      PaymentStatus  `gorm:"size:16;index" json:"status"`
	Notes       datatypes.JSON `json:"notes"`
	PaymentID   string         `gorm:"size:64" json:"payment_id"`
}
