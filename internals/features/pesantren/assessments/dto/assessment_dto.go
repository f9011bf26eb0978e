package dto

import (
	"time"

	"github.com/google/uuid"

	aModel "santri_backend/internals/features/pesantren/assessments/model"
	"santri_backend/internals/helpers/calc"
	"santri_backend/internals/helpers/dbtime"
)

/* ===================== REQUESTS ===================== */

type AssessmentItem struct {
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	CriteriaID    uuid.UUID `json:"criteria_id" validate:"required"`
	IsCompliant   bool      `json:"is_compliant"`
	AbsenceReason *string   `json:"absence_reason" validate:"omitempty,max=20"`
}

// SaveAssessmentsRequest: simpan satu lembar penilaian (tanggal + sesi) sekaligus.
type SaveAssessmentsRequest struct {
	Date      string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	SessionID uuid.UUID        `json:"session_id" validate:"required"`
	Items     []AssessmentItem `json:"items" validate:"required,min=1,max=5000,dive"`
}

/* ===================== RESPONSES ===================== */

type AssessmentResponse struct {
	ID            uuid.UUID  `json:"id"`
	Date          string     `json:"date"`
	StudentID     uuid.UUID  `json:"student_id"`
	SessionID     uuid.UUID  `json:"session_id"`
	CriteriaID    uuid.UUID  `json:"criteria_id"`
	IsCompliant   bool       `json:"is_compliant"`
	AbsenceReason *string    `json:"absence_reason,omitempty"`
	AssessedBy    *uuid.UUID `json:"assessed_by,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewAssessmentResponses(rows []aModel.DailyAssessmentModel) []AssessmentResponse {
	out := make([]AssessmentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, AssessmentResponse{
			ID:            r.ID,
			Date:          dbtime.FormatDate(r.Date),
			StudentID:     r.StudentID,
			SessionID:     r.SessionID,
			CriteriaID:    r.CriteriaID,
			IsCompliant:   r.IsCompliant,
			AbsenceReason: r.AbsenceReason,
			AssessedBy:    r.AssessedBy,
			UpdatedAt:     r.UpdatedAt,
		})
	}
	return out
}

type AttendanceSummaryResponse struct {
	Date       string                 `json:"date"`
	Halaqah    string                 `json:"halaqah,omitempty"`
	CriteriaID *uuid.UUID             `json:"criteria_id,omitempty"`
	Summary    calc.AttendanceSummary `json:"summary"`
	Students   []calc.StudentDay      `json:"students"`
}
