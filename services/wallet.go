package services

import (
	"akshu/models"
	"akshu/repository"
)

// WalletService is the thin surface the rest of the backend sees of the
// ledger: balance queries for authenticated users. No mutation is exposed
// here; stakes leave the wallet through bet placement and tokens arrive
// through settlement and verified payments, each inside its own
// transaction.
type WalletService struct {
	wallets repository.WalletRepository
}

func NewWalletService(wallets repository.WalletRepository) *WalletService {
	return &WalletService{wallets: wallets}
}

// Balance returns the user's wallet, creating it with the starting bonus on
// first touch.
func (s *WalletService) Balance(userID uint) (*models.Wallet, error) {
	return s.wallets.GetOrCreate(userID)
}
