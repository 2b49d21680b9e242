package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"techclub_backend/internals/features/admins/auth/model"
)

// StartBlacklistCleanupScheduler menghapus token blacklist yang sudah
// kedaluwarsa tiap jam supaya tabelnya tidak tumbuh tanpa batas.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			res := db.Where("expired_at < ?", time.Now()).Delete(&model.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[ERROR] Gagal membersihkan token blacklist: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[INFO] 🧹 %d token kedaluwarsa dihapus dari blacklist", res.RowsAffected)
			}
		}
	}()
}
