package models

import (
	"gorm.io/gorm"
)

type Photo struct {
	gorm.Model

	UserID   uint   `gorm:"index" json:"user_id"`
	URL      string `gorm:"size:512" json:"url"`
	PublicID string `gorm:"size:255;index" json:"public_id"`
	Filename string `gorm:"size:255" json:"filename"`
	Location string `gorm:"size:255" json:"location"`
}
