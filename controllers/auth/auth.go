package auth

import (
	"gorm.io/gorm"

	"akshu/repository"
)

const sessionTTLHours = 24

type Handler struct {
	db      *gorm.DB
	wallets repository.WalletRepository
}

func NewHandler(db *gorm.DB, wallets repository.WalletRepository) *Handler {
	return &Handler{db: db, wallets: wallets}
}
