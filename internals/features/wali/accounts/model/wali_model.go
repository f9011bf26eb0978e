package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"santri_backend/internals/helpers/phone"
)

// WaliSantriModel: akun wali (login pakai nomor HP, terpisah dari profiles).
type WaliSantriModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Phone    string    `gorm:"type:varchar(20);not null;uniqueIndex;column:phone" json:"phone"`
	Name     string    `gorm:"type:varchar(150);not null;column:name" json:"name"`
	IsActive bool      `gorm:"not null;column:is_active" json:"is_active"`
	Password string    `gorm:"type:text;not null;column:password" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WaliSantriModel) TableName() string { return "wali_santri" }

func (m *WaliSantriModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Phone = phone.Normalize(m.Phone)
	return nil
}

// WaliSantriChildModel: relasi wali ↔ santri (many-to-many).
type WaliSantriChildModel struct {
	WaliID    uuid.UUID `gorm:"type:uuid;primaryKey;column:wali_id" json:"wali_id"`
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey;index;column:student_id" json:"student_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (WaliSantriChildModel) TableName() string { return "wali_santri_children" }
