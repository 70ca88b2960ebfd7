package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"akshu/models"
)

// GameRepository stores rounds and predictions. Settlement helpers are
// written as monotone, guarded updates: re-running them after a partial
// failure skips already-settled rows and converges on the same end state.
type GameRepository interface {
	// LatestRound returns the most recently created round, or (nil, nil)
	// when no round exists yet.
	LatestRound() (*models.GameRound, error)

	// CreateRound persists a new round. RoundID carries a unique index, so
	// two generators racing on the same id cannot both succeed.
	CreateRound(round *models.GameRound) error

	// RecentResults returns the newest processed rounds, newest first.
	RecentResults(limit int) ([]models.GameRound, error)

	// PendingBets returns up to limit pending bets belonging to round
	// cohorts up to and including maxRound. Bets tagged for a later round
	// are never returned.
	PendingBets(maxRound uint64, limit int) ([]models.Prediction, error)

	// SettleBet flips one pending bet to won (winnings > 0) or lost and, for
	// a win, credits the bettor's wallet in the same transaction. The status
	// flip is guarded on status = pending: a bet settled by a concurrent or
	// earlier sweep is left alone and nothing is credited again.
	SettleBet(bet *models.Prediction, roundID uint64, winnings int64) error

	// MarkRoundProcessed flips the round to processed with TotalPayout
	// derived from the bets actually settled against it, so re-marking
	// writes the same values.
	MarkRoundProcessed(roundID uint64) error
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) LatestRound() (*models.GameRound, error) {
	var round models.GameRound
	err := r.db.Order("round_id DESC").First(&round).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &round, nil
}

func (r *gameRepository) CreateRound(round *models.GameRound) error {
	return r.db.Create(round).Error
}

func (r *gameRepository) RecentResults(limit int) ([]models.GameRound, error) {
	var rounds []models.GameRound
	err := r.db.Where("is_processed = ?", true).
		Order("round_id DESC").
		Limit(limit).
		Find(&rounds).Error
	return rounds, err
}

func (r *gameRepository) PendingBets(maxRound uint64, limit int) ([]models.Prediction, error) {
	var bets []models.Prediction
	err := r.db.Where("status = ? AND round_for <= ?", models.BetPending, maxRound).
		Order("id").
		Limit(limit).
		Find(&bets).Error
	return bets, err
}

func (r *gameRepository) SettleBet(bet *models.Prediction, roundID uint64, winnings int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		status := models.BetLost
		if winnings > 0 {
			status = models.BetWon
		}

		res := tx.Model(&models.Prediction{}).
			Where("id = ? AND status = ?", bet.ID, models.BetPending).
			Updates(map[string]any{
				"status":          status,
				"winnings":        winnings,
				"processed_round": roundID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Already settled by a previous sweep.
			return nil
		}

		if winnings > 0 {
			credit := tx.Model(&models.Wallet{}).
				Where("user_id = ?", bet.UserID).
				Updates(map[string]any{
					"balance":    gorm.Expr("balance + ?", winnings),
					"updated_at": time.Now(),
				})
			if credit.Error != nil {
				return credit.Error
			}
			if credit.RowsAffected == 0 {
				// The stake was debited from this wallet at placement, so it
				// has to exist.
				return ErrWalletNotFound
			}
		}
		return nil
	})
}

func (r *gameRepository) MarkRoundProcessed(roundID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var total int64
		if err := tx.Model(&models.Prediction{}).
			Where("processed_round = ? AND status = ?", roundID, models.BetWon).
			Select("COALESCE(SUM(winnings), 0)").
			Scan(&total).Error; err != nil {
			return err
		}

		return tx.Model(&models.GameRound{}).
			Where("round_id = ?", roundID).
			Updates(map[string]any{
				"is_processed": true,
				"total_payout": total,
			}).Error
	})
}
