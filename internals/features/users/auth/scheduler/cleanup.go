// internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "produksiku_backend/internals/features/users/auth/model"
)

// StartTokenCleanupScheduler menghapus baris api_tokens yang sudah kedaluwarsa
// secara berkala supaya tabel tidak membengkak.
func StartTokenCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			res := db.Where("expires_at <= ?", time.Now().UTC()).
				Delete(&authModel.ApiTokenModel{})
			if res.Error != nil {
				log.Printf("[SCHEDULER] gagal membersihkan api_tokens: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[SCHEDULER] 🧹 %d token kedaluwarsa dihapus", res.RowsAffected)
			}
		}
	}()
}
