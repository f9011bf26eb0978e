package constants

// Status kemampuan santri (students.status)
const (
	StatusMutqin      = "Mutqin"
	StatusMutawassith = "Mutawassith"
	StatusDhaif       = "Dhaif"
)

// Aspek kriteria penilaian harian (criteria_ref.aspect)
const (
	AspectAdab       = "adab"
	AspectDiscipline = "discipline"
)

// Alasan tidak hadir pada kriteria kehadiran (daily_assessments.absence_reason)
const (
	AbsenceSick       = "sakit"
	AbsencePermission = "izin"
	AbsenceUnexcused  = "alpha"
)

// Sasaran pengumuman (announcements.audience)
const (
	AudienceAll    = "all"
	AudienceUstadz = "ustadz"
	AudienceWali   = "wali"
)

// Kata kunci judul kriteria kehadiran
const AttendanceCriteriaKeyword = "hadir"
