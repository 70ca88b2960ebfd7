package models

import (
	"gorm.io/gorm"
)

// Wallet holds a user's Akshu token balance. One row per user; the balance
// is an integer token count and must never go negative. All mutations go
// through repository.WalletRepository so they stay atomic per user.
type Wallet struct {
	gorm.Model

	UserID  uint  `gorm:"uniqueIndex" json:"user_id"`
	Balance int64 `json:"balance"`
}
