package calc

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"santri_backend/internals/constants"
)

// DayStatus: status kehadiran satu santri dalam satu hari.
type DayStatus string

const (
	DayPresent    DayStatus = "present"
	DayPermission DayStatus = "permission"
	DaySick       DayStatus = "sick"
	DayUnexcused  DayStatus = "unexcused"
)

// precedence: semakin besar semakin dominan (alpha > sakit > izin > hadir).
var precedence = map[DayStatus]int{
	DayPresent:    0,
	DayPermission: 1,
	DaySick:       2,
	DayUnexcused:  3,
}

// AttendanceRecord: satu baris penilaian kriteria kehadiran pada satu sesi.
type AttendanceRecord struct {
	StudentID     uuid.UUID
	IsCompliant   bool
	AbsenceReason string
}

// StatusOf mengklasifikasikan satu baris sesi.
func StatusOf(r AttendanceRecord) DayStatus {
	if r.IsCompliant {
		return DayPresent
	}
	switch strings.ToLower(strings.TrimSpace(r.AbsenceReason)) {
	case constants.AbsenceSick:
		return DaySick
	case constants.AbsencePermission:
		return DayPermission
	default:
		return DayUnexcused
	}
}

// ClassifyDay menggabungkan semua baris sesi satu santri pada hari yang sama.
// Satu baris alpha membuat seluruh hari alpha walau sesi lain hadir.
// Tanpa baris → hadir tidak bisa dipastikan, dikembalikan string kosong.
func ClassifyDay(records []AttendanceRecord) DayStatus {
	if len(records) == 0 {
		return ""
	}
	out := DayPresent
	for _, r := range records {
		if s := StatusOf(r); precedence[s] > precedence[out] {
			out = s
		}
	}
	return out
}

type AttendanceSummary struct {
	Total             int `json:"total"`
	Present           int `json:"present"`
	Sick              int `json:"sick"`
	Permission        int `json:"permission"`
	Unexcused         int `json:"unexcused"`
	PresentPercent    int `json:"present_percent"`
	SickPercent       int `json:"sick_percent"`
	PermissionPercent int `json:"permission_percent"`
	UnexcusedPercent  int `json:"unexcused_percent"`
}

// StudentDay: hasil klasifikasi per santri (urut berdasarkan id agar deterministik).
type StudentDay struct {
	StudentID uuid.UUID `json:"student_id"`
	Status    DayStatus `json:"status"`
}

// ClassifyStudents mengelompokkan baris per santri lalu menerapkan ClassifyDay.
func ClassifyStudents(records []AttendanceRecord) []StudentDay {
	grouped := make(map[uuid.UUID][]AttendanceRecord)
	for _, r := range records {
		grouped[r.StudentID] = append(grouped[r.StudentID], r)
	}
	out := make([]StudentDay, 0, len(grouped))
	for id, rs := range grouped {
		out = append(out, StudentDay{StudentID: id, Status: ClassifyDay(rs)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StudentID.String() < out[j].StudentID.String()
	})
	return out
}

// SummarizeAttendance: jumlah & persentase per kategori untuk satu hari.
// Hanya santri yang punya minimal satu baris kehadiran yang dihitung.
func SummarizeAttendance(records []AttendanceRecord) AttendanceSummary {
	var s AttendanceSummary
	for _, d := range ClassifyStudents(records) {
		s.Total++
		switch d.Status {
		case DayPresent:
			s.Present++
		case DaySick:
			s.Sick++
		case DayPermission:
			s.Permission++
		case DayUnexcused:
			s.Unexcused++
		}
	}
	s.PresentPercent = Percent(s.Present, s.Total)
	s.SickPercent = Percent(s.Sick, s.Total)
	s.PermissionPercent = Percent(s.Permission, s.Total)
	s.UnexcusedPercent = Percent(s.Unexcused, s.Total)
	return s
}
