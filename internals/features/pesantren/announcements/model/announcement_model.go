package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnouncementModel: isi dalam markdown, dirender ke HTML saat dibaca.
type AnnouncementModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Title     string     `gorm:"type:varchar(200);not null;column:title" json:"title"`
	Content   string     `gorm:"type:text;not null;column:content" json:"content"`
	Audience  string     `gorm:"type:varchar(10);not null;index;column:audience" json:"audience"`
	IsActive  bool       `gorm:"not null;column:is_active" json:"is_active"`
	CreatedBy *uuid.UUID `gorm:"type:uuid;column:created_by" json:"created_by,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AnnouncementModel) TableName() string { return "announcements" }

func (m *AnnouncementModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
