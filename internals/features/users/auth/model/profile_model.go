package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"santri_backend/internals/constants"
)

// ProfileModel: akun staff (admin / ustadz / super_admin) di tabel profiles.
type ProfileModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Email     string     `gorm:"type:varchar(150);not null;uniqueIndex;column:email" json:"email"`
	FullName  string     `gorm:"type:varchar(150);not null;column:full_name" json:"full_name"`
	Role      string     `gorm:"type:varchar(20);not null;index;column:role" json:"role"`
	TeacherID *uuid.UUID `gorm:"type:uuid;column:teacher_id" json:"teacher_id,omitempty"`
	Password  string     `gorm:"type:text;not null;column:password" json:"-"`
	IsActive  bool       `gorm:"not null;column:is_active" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProfileModel) TableName() string { return "profiles" }

func (m *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	return nil
}

// UstadzID: id yang dipakai di daily_scores.ustadz_id (teacher_id bila ada, else id profil).
func (m *ProfileModel) UstadzID() uuid.UUID {
	if m.TeacherID != nil && *m.TeacherID != uuid.Nil {
		return *m.TeacherID
	}
	return m.ID
}

func (m *ProfileModel) IsAdmin() bool {
	return m.Role == constants.RoleAdmin || m.Role == constants.RoleSuperAdmin
}
