package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"santri_backend/internals/constants"
	authModel "santri_backend/internals/features/users/auth/model"
	authRepo "santri_backend/internals/features/users/auth/repository"
	helperAuth "santri_backend/internals/helpers/auth"
)

var (
	ErrInvalidCredentials = errors.New("email atau password salah")
	ErrInactiveAccount    = errors.New("akun Anda telah dinonaktifkan")
	ErrWrongPassword      = errors.New("password lama salah")
)

// Authenticate: cek email + password staff. Pesan error sengaja sama untuk email/password salah.
func Authenticate(ctx context.Context, db *gorm.DB, email, password string) (*authModel.ProfileModel, error) {
	p, err := authRepo.FindProfileByEmail(ctx, db, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := helperAuth.CheckPassword(p.Password, password); err != nil {
		if errors.Is(err, helperAuth.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !p.IsActive {
		return nil, ErrInactiveAccount
	}
	if !constants.IsStaffRole(p.Role) {
		log.Printf("[WARN] profil %s punya role tidak dikenal: %q", p.ID, p.Role)
		return nil, ErrInvalidCredentials
	}
	return p, nil
}

func StaffIdentityOf(p *authModel.ProfileModel) helperAuth.StaffIdentity {
	return helperAuth.StaffIdentity{
		ProfileID: p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      p.Role,
		TeacherID: p.TeacherID,
	}
}

// IssueToken menandatangani access token untuk profil yang sudah terautentikasi.
func IssueToken(secret string, p *authModel.ProfileModel, now time.Time, ttl time.Duration) (string, time.Time, error) {
	return helperAuth.SignAccessToken(secret, StaffIdentityOf(p), now, ttl)
}

// Logout memasukkan token ke blacklist sampai exp-nya (fallback: fallbackTTL dari sekarang).
func Logout(ctx context.Context, db *gorm.DB, secret, rawToken string, now time.Time, fallbackTTL time.Duration) error {
	if rawToken == "" {
		log.Println("[INFO] Logout tanpa access token; lanjut clear cookies (idempotent)")
		return nil
	}
	expiredAt := now.Add(fallbackTTL)
	if _, exp, err := helperAuth.ParseAccessToken(secret, rawToken); err == nil && !exp.IsZero() {
		expiredAt = exp
	}
	return authRepo.BlacklistToken(ctx, db, authRepo.HashToken(secret, rawToken), expiredAt)
}

// ResolveStaff dipakai middleware identitas: token → profil aktif, atau nil.
// Token valid tapi profil hilang dianggap belum login (dicatat sebagai warning).
func ResolveStaff(ctx context.Context, db *gorm.DB, secret, rawToken string) (*helperAuth.StaffIdentity, error) {
	if rawToken == "" || secret == "" {
		return nil, nil
	}
	profileID, _, err := helperAuth.ParseAccessToken(secret, rawToken)
	if err != nil {
		return nil, nil
	}

	blacklisted, err := authRepo.IsTokenBlacklisted(ctx, db, authRepo.HashToken(secret, rawToken))
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, nil
	}

	p, err := authRepo.FindProfileByID(ctx, db, profileID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[WARN] token valid tetapi profil %s tidak ditemukan; dianggap belum login", profileID)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, nil
	}
	s := StaffIdentityOf(p)
	return &s, nil
}

func ChangePassword(ctx context.Context, db *gorm.DB, profileID uuid.UUID, current, next string) error {
	p, err := authRepo.FindProfileByID(ctx, db, profileID)
	if err != nil {
		return err
	}
	if err := helperAuth.CheckPassword(p.Password, current); err != nil {
		if errors.Is(err, helperAuth.ErrPasswordMismatch) {
			return ErrWrongPassword
		}
		return err
	}
	hash, err := helperAuth.HashPassword(next)
	if err != nil {
		return err
	}
	return authRepo.UpdateProfilePassword(ctx, db, profileID, hash)
}
