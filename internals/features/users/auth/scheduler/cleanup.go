package scheduler

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "santri_backend/internals/features/users/auth/repository"
)

const cleanupBatch = 100

// RunBlacklistCleanup sekali jalan: hapus token yang kadaluarsa lebih dari ttlDays hari lalu.
func RunBlacklistCleanup(ctx context.Context, db *gorm.DB, now time.Time, ttlDays int) (int64, error) {
	deleteBefore := now.Add(-time.Duration(ttlDays) * 24 * time.Hour)

	var total int64
	for {
		n, err := authRepo.CleanupExpiredBlacklist(ctx, db, deleteBefore, cleanupBatch)
		if err != nil {
			return total, err
		}
		total += n
		if n < cleanupBatch {
			return total, nil
		}
	}
}

// StartBlacklistCleanupScheduler menjalankan pembersihan tiap 24 jam sampai ctx selesai.
func StartBlacklistCleanupScheduler(ctx context.Context, db *gorm.DB, ttlDays int) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")
			n, err := RunBlacklistCleanup(ctx, db, time.Now(), ttlDays)
			switch {
			case err != nil:
				log.Printf("[CLEANUP ERROR] Gagal hapus token: %v", err)
			case n > 0:
				log.Printf("[CLEANUP] %d token kadaluarsa dihapus", n)
			default:
				log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
