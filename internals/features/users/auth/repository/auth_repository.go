// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "santri_backend/internals/features/users/auth/model"
)

/* ====================== PROFILE ====================== */

func FindProfileByEmail(ctx context.Context, db *gorm.DB, email string) (*authModel.ProfileModel, error) {
	var p authModel.ProfileModel
	if err := db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func FindProfileByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*authModel.ProfileModel, error) {
	var p authModel.ProfileModel
	if err := db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func UpdateProfilePassword(ctx context.Context, db *gorm.DB, id uuid.UUID, hash string) error {
	return db.WithContext(ctx).
		Model(&authModel.ProfileModel{}).
		Where("id = ?", id).
		Update("password", hash).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

// HashToken: HMAC-SHA256(secret, token) dalam hex. Token mentah tidak pernah disimpan.
func HashToken(secret, token string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return hex.EncodeToString(m.Sum(nil))
}

// BlacklistToken idempotent (token yang sama tidak error).
func BlacklistToken(ctx context.Context, db *gorm.DB, tokenHash string, expiredAt time.Time) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&authModel.TokenBlacklist{
			Token:     tokenHash,
			ExpiredAt: expiredAt.UTC(),
		}).Error
}

func IsTokenBlacklisted(ctx context.Context, db *gorm.DB, tokenHash string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&authModel.TokenBlacklist{}).
		Where("token = ?", tokenHash).
		Count(&n).Error
	return n > 0, err
}

// CleanupExpiredBlacklist menghapus permanen baris yang kadaluarsa sebelum `before`.
func CleanupExpiredBlacklist(ctx context.Context, db *gorm.DB, before time.Time, limit int) (int64, error) {
	var ids []uint
	if err := db.WithContext(ctx).
		Unscoped().
		Model(&authModel.TokenBlacklist{}).
		Where("expired_at < ?", before.UTC()).
		Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	res := db.WithContext(ctx).Unscoped().Where("id IN ?", ids).Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
