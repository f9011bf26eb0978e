package seeds

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"santri_backend/internals/configs"
	"santri_backend/internals/seeds/reference"
	"santri_backend/internals/seeds/staff"
)

// RunAllSeeds: data awal (super admin dari ENV, kriteria & sesi bawaan). Aman dijalankan berulang.
func RunAllSeeds(ctx context.Context, db *gorm.DB) error {
	//* Staff
	_, err := staff.SeedSuperAdmin(ctx, db,
		configs.GetEnv("SEED_ADMIN_EMAIL"),
		configs.GetEnv("SEED_ADMIN_PASSWORD"),
		configs.GetEnv("SEED_ADMIN_NAME", "Super Admin"),
	)
	switch {
	case errors.Is(err, staff.ErrMissingCredentials):
		log.Println("[WARN] seed super admin dilewati:", err)
	case err != nil:
		return err
	}

	//* Referensi
	n, err := reference.SeedCriteria(ctx, db)
	if err != nil {
		return err
	}
	log.Printf("✅ %d kriteria bawaan ditambahkan", n)

	n, err = reference.SeedSessions(ctx, db)
	if err != nil {
		return err
	}
	log.Printf("✅ %d sesi bawaan ditambahkan", n)
	return nil
}
