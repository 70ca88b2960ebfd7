package models

import (
	"gorm.io/gorm"
)

type BetStatus string

const (
	BetPending BetStatus = "pending"
	BetWon     BetStatus = "won"
	BetLost    BetStatus = "lost"
)

// Prediction is a user's wager on a round's outcome color. It is created in
// pending status with the stake already debited from the wallet, and
// transitions exactly once to won or lost. RoundFor is set at placement to
// the round the bet was accepted for; settlement of round N only sweeps
// pending bets with RoundFor <= N, so a bet placed while round N is being
// settled falls into round N+1's cohort instead of being orphaned.
type Prediction struct {
	gorm.Model

	UserID         uint      `gorm:"index" json:"user_id"`
	Prediction     Color     `gorm:"size:8" json:"prediction"`
	Amount         int64     `json:"amount"`
	Status         BetStatus `gorm:"size:8;index" json:"status"`
	RoundFor       uint64    `gorm:"index" json:"round_for"`
	Winnings       int64     `json:"winnings"`
	ProcessedRound uint64    `json:"processed_round"`
}
