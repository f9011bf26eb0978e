package dto

import (
	"time"

	"github.com/google/uuid"

	authModel "santri_backend/internals/features/users/auth/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=100"`
}

type ProfileResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	TeacherID *uuid.UUID `json:"teacher_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewProfileResponse(m *authModel.ProfileModel) ProfileResponse {
	return ProfileResponse{
		ID:        m.ID,
		Email:     m.Email,
		FullName:  m.FullName,
		Role:      m.Role,
		TeacherID: m.TeacherID,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
	User        ProfileResponse `json:"user"`
	RedirectTo  string          `json:"redirect_to"`
}
