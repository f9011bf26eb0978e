package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DailyAssessmentModel: satu baris per (santri, tanggal, sesi, kriteria).
type DailyAssessmentModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Date          datatypes.Date `gorm:"not null;uniqueIndex:uq_daily_assessment,priority:2;index:idx_daily_assessment_date;column:date" json:"date"`
	StudentID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_daily_assessment,priority:1;column:student_id" json:"student_id"`
	SessionID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_daily_assessment,priority:3;column:session_id" json:"session_id"`
	CriteriaID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_daily_assessment,priority:4;column:criteria_id" json:"criteria_id"`
	IsCompliant   bool           `gorm:"not null;column:is_compliant" json:"is_compliant"`
	AbsenceReason *string        `gorm:"type:varchar(20);column:absence_reason" json:"absence_reason,omitempty"`
	AssessedBy    *uuid.UUID     `gorm:"type:uuid;column:assessed_by" json:"assessed_by,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DailyAssessmentModel) TableName() string { return "daily_assessments" }

func (m *DailyAssessmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
