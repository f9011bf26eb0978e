package staff

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"santri_backend/internals/constants"
	authModel "santri_backend/internals/features/users/auth/model"
	helperAuth "santri_backend/internals/helpers/auth"
)

var ErrMissingCredentials = errors.New("SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD belum diset")

// SeedSuperAdmin membuat akun super_admin pertama bila email tsb belum terdaftar.
// created=false bila akun sudah ada.
func SeedSuperAdmin(ctx context.Context, db *gorm.DB, email, password, fullName string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, ErrMissingCredentials
	}
	if strings.TrimSpace(fullName) == "" {
		fullName = "Super Admin"
	}

	var n int64
	if err := db.WithContext(ctx).Model(&authModel.ProfileModel{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		log.Printf("ℹ️ Akun dengan email '%s' sudah ada, dilewati.", email)
		return false, nil
	}

	// 🔐 Hash password sebelum disimpan
	hash, err := helperAuth.HashPassword(password)
	if err != nil {
		return false, err
	}
	if err := db.WithContext(ctx).Create(&authModel.ProfileModel{
		Email:    email,
		FullName: fullName,
		Role:     constants.RoleSuperAdmin,
		Password: hash,
		IsActive: true,
	}).Error; err != nil {
		return false, err
	}
	log.Printf("✅ Super admin '%s' dibuat", email)
	return true, nil
}
