package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	waliModel "santri_backend/internals/features/wali/accounts/model"
	"santri_backend/internals/helpers/phone"
)

type CreateWaliRequest struct {
	Phone    string  `json:"phone" validate:"required,min=6,max=20"`
	Name     string  `json:"name" validate:"required,min=2,max=150"`
	Password *string `json:"password" validate:"omitempty,min=6,max=100"`
}

// PlainPassword: password yang dikirim, atau default 6 digit terakhir nomor HP.
func (r *CreateWaliRequest) PlainPassword() string {
	if r.Password != nil && *r.Password != "" {
		return *r.Password
	}
	return phone.DefaultPassword(r.Phone)
}

func (r *CreateWaliRequest) ToModel(hash string) *waliModel.WaliSantriModel {
	return &waliModel.WaliSantriModel{
		Phone:    phone.Normalize(r.Phone),
		Name:     strings.TrimSpace(r.Name),
		Password: hash,
		IsActive: true,
	}
}

type UpdateWaliRequest struct {
	Phone *string `json:"phone" validate:"omitempty,min=6,max=20"`
	Name  *string `json:"name" validate:"omitempty,min=2,max=150"`
}

func (r *UpdateWaliRequest) Changes() map[string]any {
	out := map[string]any{}
	if r.Phone != nil {
		out["phone"] = phone.Normalize(*r.Phone)
	}
	if r.Name != nil {
		out["name"] = strings.TrimSpace(*r.Name)
	}
	return out
}

// SetChildrenRequest: himpunan santri yang diinginkan (menggantikan seluruh relasi).
type SetChildrenRequest struct {
	StudentIDs []uuid.UUID `json:"student_ids" validate:"max=100,dive,required"`
}

type ChildBrief struct {
	StudentID uuid.UUID `json:"student_id"`
	Name      string    `json:"name"`
	Halaqah   string    `json:"halaqah"`
}

type WaliResponse struct {
	ID        uuid.UUID    `json:"id"`
	Phone     string       `json:"phone"`
	Name      string       `json:"name"`
	IsActive  bool         `json:"is_active"`
	Children  []ChildBrief `json:"children,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

func NewWaliResponse(m *waliModel.WaliSantriModel, children []ChildBrief) WaliResponse {
	return WaliResponse{
		ID:        m.ID,
		Phone:     m.Phone,
		Name:      m.Name,
		IsActive:  m.IsActive,
		Children:  children,
		CreatedAt: m.CreatedAt,
	}
}

type ReconcileResult struct {
	WaliID  uuid.UUID   `json:"wali_id"`
	Added   []uuid.UUID `json:"added"`
	Removed []uuid.UUID `json:"removed"`
	Total   int         `json:"total"`
}
