package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CriteriaRefModel: kriteria penilaian harian per aspek (adab / discipline).
// sort_order unik di dalam satu aspek.
type CriteriaRefModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Aspect      string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_criteria_aspect_order,priority:1;column:aspect" json:"aspect"`
	Title       string    `gorm:"type:varchar(150);not null;column:title" json:"title"`
	Description *string   `gorm:"type:text;column:description" json:"description,omitempty"`
	IsActive    bool      `gorm:"not null;column:is_active" json:"is_active"`
	SortOrder   int       `gorm:"not null;uniqueIndex:uq_criteria_aspect_order,priority:2;column:sort_order" json:"sort_order"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CriteriaRefModel) TableName() string { return "criteria_ref" }

func (m *CriteriaRefModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
