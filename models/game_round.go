package models

import (
	"time"

	"gorm.io/gorm"
)

type Color string

const (
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorViolet Color = "violet"
)

func (c Color) Valid() bool {
	switch c {
	case ColorRed, ColorGreen, ColorViolet:
		return true
	}
	return false
}

// GameRound is one cycle of the color prediction game. RoundID is a
// monotonically increasing business identifier starting at 1, separate from
// the gorm primary key. A round is mutated exactly once, by settlement,
// which flips IsProcessed and records TotalPayout.
type GameRound struct {
	gorm.Model

	RoundID      uint64    `gorm:"uniqueIndex" json:"round_id"`
	WinningColor Color     `gorm:"size:8" json:"winning_color"`
	IsProcessed  bool      `gorm:"index" json:"is_processed"`
	ResultTime   time.Time `json:"result_time"`
	TotalPayout  int64     `json:"total_payout"`
}
