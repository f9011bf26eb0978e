package dto

import (
	"time"

	"github.com/google/uuid"
)

// ChildRow: hasil get_wali_children_by_phone.
type ChildRow struct {
	StudentID    uuid.UUID `json:"student_id"`
	Name         string    `json:"name"`
	Halaqah      string    `json:"halaqah"`
	Status       string    `json:"status"`
	AverageScore float64   `json:"average_score"`
}

type RecentScore struct {
	Adab      float64   `json:"adab"`
	Disiplin  float64   `json:"disiplin"`
	Setoran   float64   `json:"setoran"`
	Average   float64   `json:"average"`
	CreatedAt time.Time `json:"created_at"`
}

type ChildSummary struct {
	ChildRow
	AttendancePercent int          `json:"attendance_percent"`
	DaysRecorded      int          `json:"days_recorded"`
	DaysPresent       int          `json:"days_present"`
	LastScore         *RecentScore `json:"last_score,omitempty"`
}

type DashboardSummary struct {
	WindowDays int            `json:"window_days"`
	From       string         `json:"from"`
	To         string         `json:"to"`
	Children   []ChildSummary `json:"children"`
}
