package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	scModel "santri_backend/internals/features/pesantren/scores/model"
	"santri_backend/internals/helpers/calc"
)

type CreateScoreRequest struct {
	StudentID    uuid.UUID  `json:"student_id" validate:"required"`
	CurriculumID *uuid.UUID `json:"curriculum_id"`
	Adab         *float64   `json:"adab" validate:"required,gte=0,lte=100"`
	Disiplin     *float64   `json:"disiplin" validate:"required,gte=0,lte=100"`
	Setoran      *float64   `json:"setoran" validate:"required,gte=0,lte=100"`
	Notes        *string    `json:"notes" validate:"omitempty,max=1000"`
}

// StudentSnapshot disimpan sebagai JSON di daily_scores.student_snapshot.
type StudentSnapshot struct {
	Name    string `json:"name"`
	Halaqah string `json:"halaqah"`
}

type ScoreResponse struct {
	ID              uuid.UUID      `json:"id"`
	StudentID       uuid.UUID      `json:"student_id"`
	UstadzID        uuid.UUID      `json:"ustadz_id"`
	CurriculumID    *uuid.UUID     `json:"curriculum_id,omitempty"`
	Adab            float64        `json:"adab"`
	Disiplin        float64        `json:"disiplin"`
	Setoran         float64        `json:"setoran"`
	Average         float64        `json:"average"`
	Notes           *string        `json:"notes,omitempty"`
	StudentSnapshot datatypes.JSON `json:"student_snapshot,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

func NewScoreResponse(m *scModel.DailyScoreModel) ScoreResponse {
	return ScoreResponse{
		ID:              m.ID,
		StudentID:       m.StudentID,
		UstadzID:        m.UstadzID,
		CurriculumID:    m.CurriculumID,
		Adab:            m.Adab,
		Disiplin:        m.Disiplin,
		Setoran:         m.Setoran,
		Average:         calc.Round2(calc.ScoreAverage(m.Adab, m.Disiplin, m.Setoran)),
		Notes:           m.Notes,
		StudentSnapshot: m.StudentSnapshot,
		CreatedAt:       m.CreatedAt,
	}
}

func NewScoreResponses(rows []scModel.DailyScoreModel) []ScoreResponse {
	out := make([]ScoreResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewScoreResponse(&rows[i]))
	}
	return out
}

// StudentStanding: rata-rata & status santri setelah dihitung ulang.
type StudentStanding struct {
	StudentID    uuid.UUID `json:"student_id"`
	AverageScore float64   `json:"average_score"`
	Status       string    `json:"status"`
	ScoreCount   int       `json:"score_count"`
}
