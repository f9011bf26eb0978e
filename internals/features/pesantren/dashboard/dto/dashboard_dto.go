package dto

import (
	scDTO "santri_backend/internals/features/pesantren/scores/dto"
	"santri_backend/internals/helpers/calc"
)

type StatusBreakdown struct {
	Mutqin      int64 `json:"mutqin"`
	Mutawassith int64 `json:"mutawassith"`
	Dhaif       int64 `json:"dhaif"`
}

type TodayAttendance struct {
	Date               string                 `json:"date"`
	CriteriaConfigured bool                   `json:"criteria_configured"`
	Summary            calc.AttendanceSummary `json:"summary"`
}

type AdminDashboard struct {
	Students      int64           `json:"students"`
	Teachers      int64           `json:"teachers"`
	Walis         int64           `json:"walis"`
	AverageScore  float64         `json:"average_score"`
	StatusCounts  StatusBreakdown `json:"status_counts"`
	Attendance    TodayAttendance `json:"attendance_today"`
	ActiveNotices int64           `json:"active_announcements"`
}

type TeacherDashboard struct {
	Attendance   TodayAttendance       `json:"attendance_today"`
	RecentScores []scDTO.ScoreResponse `json:"recent_scores"`
	ScoresToday  int64                 `json:"scores_today"`
}
