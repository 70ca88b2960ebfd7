package jobs

import (
	"log"
	"time"

	"gorm.io/gorm"

	"akshu/services"
	"akshu/task"
)

// StartGameScheduler drives the round lifecycle: every tick it checks the
// betting-window clock and, once the window has elapsed, runs one full
// generate-and-settle cycle. A second ticker sweeps expired sessions.
func StartGameScheduler(game *services.GameService, db *gorm.DB) {
	tickerCycle := time.NewTicker(5 * time.Second)
	go func() {
		for {
			<-tickerCycle.C
			due, err := game.CycleDue()
			if err != nil {
				log.Printf("❌ error checking round clock: %v", err)
				continue
			}
			if !due {
				continue
			}
			if _, err := game.RunRoundCycle(); err != nil {
				log.Printf("❌ error running round cycle: %v", err)
			}
		}
	}()

	tickerCleanup := time.NewTicker(1 * time.Hour)
	go func() {
		for {
			<-tickerCleanup.C
			task.CleanupExpiredSessions(db)
		}
	}()
}
