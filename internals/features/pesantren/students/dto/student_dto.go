package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	sModel "santri_backend/internals/features/pesantren/students/model"
)

/* ===================== REQUESTS ===================== */

type CreateStudentRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=150"`
	Halaqah string  `json:"halaqah" validate:"required,max=80"`
	Status  *string `json:"status" validate:"omitempty,oneof=Mutqin Mutawassith Dhaif"`
}

func (r *CreateStudentRequest) ToModel() *sModel.StudentModel {
	m := &sModel.StudentModel{
		Name:    strings.TrimSpace(r.Name),
		Halaqah: strings.TrimSpace(r.Halaqah),
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	return m
}

type UpdateStudentRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=150"`
	Halaqah *string `json:"halaqah" validate:"omitempty,max=80"`
	Status  *string `json:"status" validate:"omitempty,oneof=Mutqin Mutawassith Dhaif"`
}

// Changes: hanya kolom yang dikirim (PATCH semantics).
func (r *UpdateStudentRequest) Changes() map[string]any {
	out := map[string]any{}
	if r.Name != nil {
		out["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Halaqah != nil {
		out["halaqah"] = strings.TrimSpace(*r.Halaqah)
	}
	if r.Status != nil {
		out["status"] = *r.Status
	}
	return out
}

/* ===================== RESPONSES ===================== */

type StudentResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Halaqah      string    `json:"halaqah"`
	Status       string    `json:"status"`
	AverageScore float64   `json:"average_score"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewStudentResponse(m *sModel.StudentModel) StudentResponse {
	return StudentResponse{
		ID:           m.ID,
		Name:         m.Name,
		Halaqah:      m.Halaqah,
		Status:       m.Status,
		AverageScore: m.AverageScore,
		CreatedAt:    m.CreatedAt,
	}
}

func NewStudentResponses(rows []sModel.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewStudentResponse(&rows[i]))
	}
	return out
}
