package models

import (
	"gorm.io/gorm"
)

type Contact struct {
	gorm.Model

	UserID uint   `gorm:"index" json:"user_id"`
	Name   string `gorm:"size:255" json:"name"`
	Phone  string `gorm:"size:64" json:"phone"`
	Email  string `gorm:"size:255" json:"email"`
	Source string `gorm:"size:32" json:"source"`
}
