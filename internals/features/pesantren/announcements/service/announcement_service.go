package service

import (
	"context"

	"gorm.io/gorm"

	"santri_backend/internals/constants"
	anModel "santri_backend/internals/features/pesantren/announcements/model"
)

// AudiencesFor: pengumuman "all" + sasaran spesifik.
func AudiencesFor(audience string) []string {
	return []string{constants.AudienceAll, audience}
}

// ListActive: pengumuman aktif untuk audiens tertentu, terbaru dulu.
func ListActive(ctx context.Context, db *gorm.DB, audience string, limit int) ([]anModel.AnnouncementModel, error) {
	q := db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("audience IN ?", AudiencesFor(audience)).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []anModel.AnnouncementModel
	err := q.Find(&rows).Error
	return rows, err
}
