package dto

import (
	"github.com/google/uuid"
)

type WaliLoginRequest struct {
	Phone    string `json:"phone" validate:"required,min=6,max=20"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type WaliChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=100"`
}

type WaliMeResponse struct {
	ID    uuid.UUID `json:"id"`
	Phone string    `json:"phone"`
	Name  string    `json:"name"`
}

type WaliLoginResponse struct {
	User       WaliMeResponse `json:"user"`
	RedirectTo string         `json:"redirect_to"`
}
