package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"santri_backend/internals/constants"
)

type StudentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name         string    `gorm:"type:varchar(150);not null;column:name" json:"name"`
	Halaqah      string    `gorm:"type:varchar(80);not null;index;column:halaqah" json:"halaqah"`
	Status       string    `gorm:"type:varchar(20);not null;column:status" json:"status"`
	AverageScore float64   `gorm:"type:decimal(5,2);not null;column:average_score" json:"average_score"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = constants.StatusDhaif
	}
	return nil
}
