package photos

import (
	"gorm.io/gorm"

	"akshu/providers/storage"
)

type Handler struct {
	db      *gorm.DB
	storage storage.Client
}

func NewHandler(db *gorm.DB, storage storage.Client) *Handler {
	return &Handler{db: db, storage: storage}
}
