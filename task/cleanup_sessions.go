package task

import (
	"log"
	"time"

	"gorm.io/gorm"

	"akshu/models"
)

func CleanupExpiredSessions(db *gorm.DB) {
	result := db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})

	if result.Error != nil {
		log.Println("❌ Failed to delete expired sessions:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Deleted %d expired sessions\n", result.RowsAffected)
	}
}
