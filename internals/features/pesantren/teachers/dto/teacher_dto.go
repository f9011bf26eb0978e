package dto

import (
	"strings"

	"santri_backend/internals/constants"
	authModel "santri_backend/internals/features/users/auth/model"
)

type CreateTeacherRequest struct {
	Email    string `json:"email" validate:"required,email,max=150"`
	FullName string `json:"full_name" validate:"required,min=2,max=150"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

func (r *CreateTeacherRequest) ToModel(hash string) *authModel.ProfileModel {
	return &authModel.ProfileModel{
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		FullName: strings.TrimSpace(r.FullName),
		Role:     constants.RoleUstadz,
		Password: hash,
		IsActive: true,
	}
}

type UpdateTeacherRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=150"`
	FullName *string `json:"full_name" validate:"omitempty,min=2,max=150"`
}

func (r *UpdateTeacherRequest) Changes() map[string]any {
	out := map[string]any{}
	if r.Email != nil {
		out["email"] = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.FullName != nil {
		out["full_name"] = strings.TrimSpace(*r.FullName)
	}
	return out
}

type ResetTeacherPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6,max=100"`
}
