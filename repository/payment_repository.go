package repository

import (
	"gorm.io/gorm"

	"akshu/models"
)

// PaymentRepository stores token purchase orders and settles them against
// the wallet ledger.
type PaymentRepository interface {
	Create(order *models.PaymentOrder) error
	FindOrder(orderID string, userID uint) (*models.PaymentOrder, error)

	// ClaimAndCredit flips the order from created to credited and credits
	// the wallet in one transaction. The flip is guarded on the created
	// status, so a replayed verification claims zero rows and credits
	// nothing (already = true). A failed credit rolls the claim back and
	// the order stays claimable for the next attempt.
	ClaimAndCredit(orderID, paymentID string, userID uint, tokens int64) (balance int64, already bool, err error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(order *models.PaymentOrder) error {
	return r.db.Create(order).Error
}

func (r *paymentRepository) FindOrder(orderID string, userID uint) (*models.PaymentOrder, error) {
	var order models.PaymentOrder
	if err := r.db.Where("order_id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *paymentRepository) ClaimAndCredit(orderID, paymentID string, userID uint, tokens int64) (int64, bool, error) {
	var balance int64
	var already bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		claim := tx.Model(&models.PaymentOrder{}).
			Where("order_id = ? AND status = ?", orderID, models.PaymentCreated).
			Updates(map[string]any{
				"status":     models.PaymentCredited,
				"payment_id": paymentID,
			})
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			already = true
			return nil
		}

		b, err := creditWallet(tx, userID, tokens)
		if err != nil {
			return err
		}
		balance = b
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return balance, already, nil
}
