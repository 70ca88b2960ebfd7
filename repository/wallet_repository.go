package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"akshu/models"
)

// StartingBonus is the free token grant a wallet is created with.
const StartingBonus int64 = 1000

var (
	ErrInsufficientFunds = errors.New("insufficient token balance")
	ErrWalletNotFound    = errors.New("wallet not found")
)

// WalletRepository owns all balance mutations. Every write is a single
// atomic SQL step or a row-locked transaction, so concurrent debits can
// never both pass the balance check and no update is lost.
type WalletRepository interface {
	// GetOrCreate returns the user's wallet, creating it with the starting
	// bonus on first touch. Creation is insert-if-absent: concurrent first
	// touches produce exactly one wallet.
	GetOrCreate(userID uint) (*models.Wallet, error)

	// Debit subtracts amount (> 0) only if the balance covers it, returning
	// ErrInsufficientFunds otherwise with the balance untouched. When bet is
	// non-nil it is inserted in the same transaction, so the stake reservation
	// and the bet record commit together or not at all.
	Debit(userID uint, amount int64, bet *models.Prediction) (int64, error)
}

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) GetOrCreate(userID uint) (*models.Wallet, error) {
	fresh := models.Wallet{UserID: userID, Balance: StartingBonus}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&fresh).Error; err != nil {
		return nil, err
	}

	var wallet models.Wallet
	if err := r.db.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		return nil, err
	}
	return &wallet, nil
}

// creditWallet adds amount to the user's balance inside tx, creating the
// wallet with the starting bonus first if absent, and returns the new
// balance. Callers that must commit the credit together with other writes
// pass their transaction handle.
func creditWallet(tx *gorm.DB, userID uint, amount int64) (int64, error) {
	fresh := models.Wallet{UserID: userID, Balance: StartingBonus}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&fresh).Error; err != nil {
		return 0, err
	}

	if err := tx.Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance + ?", amount),
			"updated_at": time.Now(),
		}).Error; err != nil {
		return 0, err
	}

	var wallet models.Wallet
	if err := tx.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}

func (r *walletRepository) Debit(userID uint, amount int64, bet *models.Prediction) (int64, error) {
	var newBalance int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var wallet models.Wallet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&wallet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWalletNotFound
			}
			return err
		}

		if wallet.Balance < amount {
			return ErrInsufficientFunds
		}

		wallet.Balance -= amount
		if err := tx.Save(&wallet).Error; err != nil {
			return err
		}

		if bet != nil {
			if err := tx.Create(bet).Error; err != nil {
				return err
			}
		}

		newBalance = wallet.Balance
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}
