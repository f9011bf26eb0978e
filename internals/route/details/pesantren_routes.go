package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AnnouncementRoutes "santri_backend/internals/features/pesantren/announcements/route"
	AssessmentRoutes "santri_backend/internals/features/pesantren/assessments/route"
	CriteriaRoutes "santri_backend/internals/features/pesantren/criteria/route"
	DashboardRoutes "santri_backend/internals/features/pesantren/dashboard/route"
	ScoreRoutes "santri_backend/internals/features/pesantren/scores/route"
	SessionRoutes "santri_backend/internals/features/pesantren/sessions/route"
	StudentRoutes "santri_backend/internals/features/pesantren/students/route"
	TeacherRoutes "santri_backend/internals/features/pesantren/teachers/route"
	WaliAccountRoutes "santri_backend/internals/features/wali/accounts/route"
	"santri_backend/internals/features/wali/auth/session"
)

/* ===================== ADMIN ===================== */
// /api/admin/* → admin & super_admin
func PesantrenAdminRoutes(admin fiber.Router, db *gorm.DB, sessions *session.Store) {
	DashboardRoutes.DashboardAdminRoutes(admin, db)
	StudentRoutes.StudentAdminRoutes(admin, db)
	TeacherRoutes.TeacherAdminRoutes(admin, db)
	CriteriaRoutes.CriteriaAdminRoutes(admin, db)
	SessionRoutes.SessionAdminRoutes(admin, db)
	AssessmentRoutes.AssessmentAdminRoutes(admin, db)
	ScoreRoutes.ScoreAdminRoutes(admin, db)
	AnnouncementRoutes.AnnouncementAdminRoutes(admin, db)
	WaliAccountRoutes.WaliAccountAdminRoutes(admin, db, sessions)
}

/* ===================== USTADZ ===================== */
// /api/ustadz/* → ustadz & super_admin
func PesantrenTeacherRoutes(ustadz fiber.Router, db *gorm.DB) {
	DashboardRoutes.DashboardTeacherRoutes(ustadz, db)
	StudentRoutes.StudentTeacherRoutes(ustadz, db)
	CriteriaRoutes.CriteriaTeacherRoutes(ustadz, db)
	SessionRoutes.SessionTeacherRoutes(ustadz, db)
	AssessmentRoutes.AssessmentTeacherRoutes(ustadz, db)
	ScoreRoutes.ScoreTeacherRoutes(ustadz, db)
	AnnouncementRoutes.AnnouncementTeacherRoutes(ustadz, db)
}

/* ===================== DISPATCH ===================== */
func DashboardDispatchRoutes(app fiber.Router, db *gorm.DB) {
	DashboardRoutes.DashboardDispatchRoute(app, db)
}
