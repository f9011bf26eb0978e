package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	waliModel "santri_backend/internals/features/wali/accounts/model"
	helperAuth "santri_backend/internals/helpers/auth"
	"santri_backend/internals/helpers/phone"
)

var (
	ErrInvalidCredentials = errors.New("nomor HP atau password salah")
	ErrInactiveAccount    = errors.New("akun wali telah dinonaktifkan")
)

// LoginWali: nomor HP dinormalisasi dulu, jadi "+62 812…" dan "0812…" menunjuk akun yang sama.
func LoginWali(ctx context.Context, db *gorm.DB, rawPhone, password string) (*waliModel.WaliSantriModel, error) {
	p := phone.Normalize(rawPhone)
	if p == "" {
		return nil, ErrInvalidCredentials
	}

	var w waliModel.WaliSantriModel
	err := db.WithContext(ctx).Where("phone = ?", p).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := helperAuth.CheckPassword(w.Password, password); err != nil {
		if errors.Is(err, helperAuth.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !w.IsActive {
		return nil, ErrInactiveAccount
	}
	return &w, nil
}

// ChangeWaliPassword: false (tanpa error) bila password lama tidak cocok.
func ChangeWaliPassword(ctx context.Context, db *gorm.DB, waliID uuid.UUID, oldPassword, newPassword string) (bool, error) {
	var w waliModel.WaliSantriModel
	if err := db.WithContext(ctx).Select("id", "password").Where("id = ?", waliID).First(&w).Error; err != nil {
		return false, err
	}
	if err := helperAuth.CheckPassword(w.Password, oldPassword); err != nil {
		if errors.Is(err, helperAuth.ErrPasswordMismatch) {
			return false, nil
		}
		return false, err
	}
	hash, err := helperAuth.HashPassword(newPassword)
	if err != nil {
		return false, err
	}
	res := db.WithContext(ctx).Model(&waliModel.WaliSantriModel{}).
		Where("id = ?", waliID).
		Update("password", hash)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ResolveParent membaca ulang akun wali pemilik sesi. Sesi dianggap tidak berlaku
// (nil, nil) bila akun sudah dihapus, nonaktif, atau nomor HP-nya sudah diganti
// sejak sesi dibuat.
func ResolveParent(ctx context.Context, db *gorm.DB, waliID uuid.UUID, sessionPhone string) (*helperAuth.ParentIdentity, error) {
	var w waliModel.WaliSantriModel
	err := db.WithContext(ctx).
		Select("id", "phone", "name", "is_active").
		Where("id = ?", waliID).
		First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[WARN] sesi wali %s menunjuk akun yang tidak ada; dianggap belum login", waliID)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !w.IsActive || w.Phone != phone.Normalize(sessionPhone) {
		return nil, nil
	}
	return &helperAuth.ParentIdentity{WaliID: w.ID, Phone: w.Phone, Name: w.Name}, nil
}
