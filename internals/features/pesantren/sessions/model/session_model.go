package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"santri_backend/internals/helpers/dbtime"
)

// SessionRefModel: slot waktu harian untuk penilaian (mis. Subuh, Ba'da Ashar).
type SessionRefModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name      string     `gorm:"type:varchar(100);not null;column:name" json:"name"`
	TimeStart dbtime.Tod `gorm:"type:time;not null;column:time_start" json:"time_start"`
	TimeEnd   dbtime.Tod `gorm:"type:time;not null;column:time_end" json:"time_end"`
	SortOrder int        `gorm:"not null;uniqueIndex;column:sort_order" json:"sort_order"`
	IsActive  bool       `gorm:"not null;column:is_active" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SessionRefModel) TableName() string { return "sessions_ref" }

func (m *SessionRefModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
