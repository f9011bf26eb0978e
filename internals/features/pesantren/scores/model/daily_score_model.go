package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DailyScoreModel: satu baris per kejadian penilaian (adab, disiplin, setoran 0–100).
type DailyScoreModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	StudentID    uuid.UUID  `gorm:"type:uuid;not null;index;column:student_id" json:"student_id"`
	UstadzID     uuid.UUID  `gorm:"type:uuid;not null;index;column:ustadz_id" json:"ustadz_id"`
	CurriculumID *uuid.UUID `gorm:"type:uuid;column:curriculum_id" json:"curriculum_id,omitempty"`
	Adab         float64    `gorm:"type:decimal(5,2);not null;column:adab" json:"adab"`
	Disiplin     float64    `gorm:"type:decimal(5,2);not null;column:disiplin" json:"disiplin"`
	Setoran      float64    `gorm:"type:decimal(5,2);not null;column:setoran" json:"setoran"`
	Notes        *string    `gorm:"type:text;column:notes" json:"notes,omitempty"`

	// Snapshot nama & halaqah santri saat dinilai (riwayat tetap terbaca walau data santri berubah)
	StudentSnapshot datatypes.JSON `gorm:"column:student_snapshot" json:"student_snapshot,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (DailyScoreModel) TableName() string { return "daily_scores" }

func (m *DailyScoreModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
