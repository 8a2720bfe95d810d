package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"aprendia_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler borra periódicamente tokens vencidos de la
// blacklist y refresh tokens expirados.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(6 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now().UTC()

			if err := db.Unscoped().
				Where("expired_at < ?", now).
				Delete(&model.TokenBlacklist{}).Error; err != nil {
				log.Println("[ERROR] Limpieza de blacklist falló:", err)
			}

			if err := db.
				Where("expires_at < ?", now).
				Delete(&model.RefreshToken{}).Error; err != nil {
				log.Println("[ERROR] Limpieza de refresh tokens falló:", err)
			}
		}
	}()
}
