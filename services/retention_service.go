// services/retention_service.go
package services

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartRetentionScheduler sweeps expired load sheets for every user once a
// night, in addition to the prune that runs on each listing request.
func StartRetentionScheduler(db *gorm.DB) {
	loadSheets := NewLoadSheetService(db)

	c := cron.New()

	// Run daily at 2 AM
	c.AddFunc("0 2 * * *", func() {
		loadSheets.PruneAll()
	})

	c.Start()
	log.Println("Load sheet retention scheduler started")
}
